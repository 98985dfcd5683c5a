package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// applicationName identifies this app in entity alert headers
const applicationName = "teamPortalApp"

// Entity alert headers mirror the convention the frontend expects:
// X-teamPortalApp-alert names the event, X-teamPortalApp-params the id.

func setCreationAlert(c *gin.Context, entity, id string) {
	c.Header(fmt.Sprintf("X-%s-alert", applicationName), fmt.Sprintf("%s.%s.created", applicationName, entity))
	c.Header(fmt.Sprintf("X-%s-params", applicationName), id)
}

func setUpdateAlert(c *gin.Context, entity, id string) {
	c.Header(fmt.Sprintf("X-%s-alert", applicationName), fmt.Sprintf("%s.%s.updated", applicationName, entity))
	c.Header(fmt.Sprintf("X-%s-params", applicationName), id)
}

func setDeletionAlert(c *gin.Context, entity, id string) {
	c.Header(fmt.Sprintf("X-%s-alert", applicationName), fmt.Sprintf("%s.%s.deleted", applicationName, entity))
	c.Header(fmt.Sprintf("X-%s-params", applicationName), id)
}
