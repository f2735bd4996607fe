package rest

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shareit-api/internal/application/ports"
)

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 600 // seconds
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
	clientURL   string
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
	clientURL string,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
		clientURL:   clientURL,
	}

	r.GET(RouteAuthGoogle, ac.GoogleLoginHandler)
	r.GET(RouteAuthGoogleCallback, ac.GoogleCallbackHandler)

	return ac
}

// GoogleLoginHandler starts the consent flow. The random state round-trips
// through a cookie so the callback can reject forged redirects.
func (ac *AuthController) GoogleLoginHandler(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to start login"},
		)
		ac.logger.Error("randomState() error", zap.Error(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieTTL, "/", "", false, true)

	c.Redirect(http.StatusTemporaryRedirect, ac.authService.AuthCodeURL(state))
}

func (ac *AuthController) GoogleCallbackHandler(c *gin.Context) {
	wantState, err := c.Cookie(stateCookieName)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid oauth state"},
		)
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "missing authorization code"},
		)
		return
	}

	token, err := ac.authService.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		ac.logger.Error("HandleGoogleCallback() error", zap.Error(err))
		// failed logins land back on the app root, not on an error page
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, ac.clientURL+"/auth/success?token="+token)
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
