package middleware

import (
	"net/http"
	"strings"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/utils"
	"github.com/gin-gonic/gin"
)

const claimsContextKey = "claims"

func AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Invalid token",
		})
		return
	}

	c.Set(claimsContextKey, claims)
}

func AdminAuthMiddleware(c *gin.Context) {
	AuthMiddleware(c)
	if c.IsAborted() {
		return
	}
	claims := GetClaims(c)
	if claims == nil || claims.Role != types.USER_ROLE_ADMIN {
		c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "Admin access required",
		})
		return
	}
}

// GetClaims returns the authenticated caller's claims, or nil outside an
// authenticated route.
func GetClaims(c *gin.Context) *utils.UserClaims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*utils.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
