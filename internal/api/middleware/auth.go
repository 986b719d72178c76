package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/redis"
	"github.com/aminbn12/planiunv/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID = "user_id"
	CtxRole   = "user_role"
	CtxClaims = "claims"
)

// JWTAuth authenticates the request from its Bearer token and stores
// the identity on the context. Revoked tokens are rejected when Redis
// is available; without it only the signature and expiry are checked.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Non authentifié")
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Unauthorized(c, "Non authentifié")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			msg := "Non authentifié"
			if err == jwt.ErrTokenExpired {
				msg = "Session expirée"
			}
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				response.InternalError(c, "Erreur interne du serveur")
				c.Abort()
				return
			}
			if revoked {
				response.Unauthorized(c, "Session expirée")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// RoleAuth allows only the listed roles past. It must run after
// JWTAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Accès non autorisé")
		c.Abort()
	}
}
