package api

import (
	"ahmadaybb/exercise-tracker/internal/observability"
	"ahmadaybb/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys and headers
const (
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// notFoundMessage is the body returned for any unknown user id.
const notFoundMessage = "No user exists for that id"

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// RequestLoggerMiddleware logs one line per request once it has been handled.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		fullURL := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			fullURL = fullURL + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		status := c.Writer.Status()
		level := "INFO"
		switch {
		case status >= http.StatusInternalServerError:
			level = "ERROR"
		case status >= http.StatusBadRequest:
			level = "WARN"
		}
		line := "%s: %s %s | status=%d | latency=%v | request_id=%s"
		args := []interface{}{level, c.Request.Method, fullURL, status, time.Since(start), c.GetString(ContextRequestIDKey)}
		if len(c.Errors) > 0 {
			line += " | error=%s"
			args = append(args, c.Errors.String())
		}
		log.Printf(line, args...)
	}
}

// MetricsMiddleware records request counts and latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// CORSMiddleware allows any origin, matching the public API's browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+HeaderRequestID)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service errors onto status codes.
func abortWithServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
