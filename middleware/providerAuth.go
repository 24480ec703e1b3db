package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/provider"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// JWTAuthProviderMiddleware validates the bearer token for provider-facing
// management routes. The token must both verify and match the hash stored on
// the provider record, so revoking a token server-side takes effect at once.
func JWTAuthProviderMiddleware(providers providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		providerID, err := utils.SubjectFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		prov, err := providers.GetByID(c.Request.Context(), providerID)
		if err != nil || prov == nil {
			logger.Warn("Provider not found when validating token", zap.String("providerID", providerID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Provider not found"})
			return
		}

		if utils.HashToken(tokenString) != prov.TokenHash {
			logger.Warn("Token hash mismatch", zap.String("providerID", providerID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("providerID", providerID)
		c.Next()
	}
}
