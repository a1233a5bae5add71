package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/storefront-server/internal/logger"
)

// PasswordVerifier checks a candidate password against a stored digest.
type PasswordVerifier interface {
	Verify(candidate, storedDigest string) bool
}

// AdminAuth guards administrator routes with HTTP basic authentication.
// It keeps no session: every request must carry credentials.
type AdminAuth struct {
	username string
	digest   string
	verifier PasswordVerifier
	logger   *logger.Logger
}

// NewAdminAuth creates an AdminAuth accepting username with the password whose digest is digest.
func NewAdminAuth(username, digest string, verifier PasswordVerifier, logger *logger.Logger) *AdminAuth {
	return &AdminAuth{
		username: username,
		digest:   digest,
		verifier: verifier,
		logger:   logger,
	}
}

// Handle allows the request only for the configured administrator.
func (m *AdminAuth) Handle(c *gin.Context) {
	if m.authorized(c.GetHeader("Authorization")) {
		c.Next()
		return
	}

	m.logger.Info("Admin auth: access denied",
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP())

	c.Header("WWW-Authenticate", "Basic")
	c.String(http.StatusUnauthorized, "Unauthorized")
	c.Abort()
}

func (m *AdminAuth) authorized(header string) bool {
	username, password, ok := parseBasic(header)
	if !ok {
		return false
	}

	usernameOK := username == m.username
	passwordOK := m.verifier.Verify(password, m.digest)

	return usernameOK && passwordOK
}

// parseBasic decodes "Basic base64(user:password)". The password may contain colons.
func parseBasic(header string) (username, password string, ok bool) {
	scheme, param, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(param))
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
