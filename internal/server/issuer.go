package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	issuerdomain "github.com/smallbiznis/invoicepilot/internal/issuer/domain"
)

func (s *Server) GetIssuerProfile(c *gin.Context) {
	profile, err := s.issuerSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) UpdateIssuerBranding(c *gin.Context) {
	var req issuerdomain.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	profile, err := s.issuerSvc.UpdateBranding(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
