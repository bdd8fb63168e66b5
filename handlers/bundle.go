package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers wired up in main so route
// registration depends on one value.
type HandlerBundle struct {
	SubmitContactHandler  gin.HandlerFunc
	RegisterDriverHandler gin.HandlerFunc
}
