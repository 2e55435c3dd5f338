package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"sweatfix/config"
	"sweatfix/logger"
	"sweatfix/middlewares"
	"sweatfix/services"
	"sweatfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookieName = "sf_oauth_state"
	sessionMaxAge   = int(24 * time.Hour / time.Second)
)

// Served to the OAuth popup so the opener tab can refresh its auth state.
const oauthSuccessPage = `<html>
  <body>
    <script>
      if (window.opener) {
        window.opener.postMessage({ type: 'OAUTH_AUTH_SUCCESS' }, '*');
        window.close();
      } else {
        window.location.href = '/';
      }
    </script>
    <p>Authentication successful. This window should close automatically.</p>
  </body>
</html>`

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  config.AppURL() + "/auth/google/callback",
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

func setSessionCookie(c *gin.Context, token string) {
	// Cross-site cookies need Secure+None behind the production proxy;
	// local dev stays on Lax so plain http still works.
	secure := config.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middlewares.SessionCookieName, token, sessionMaxAge, "/", "", secure, true)
}

// DemoLogin creates (or reuses) the fixed demo identity and opens a session.
func DemoLogin(c *gin.Context) {
	user, err := services.FindOrCreateDemoUser()
	if err != nil {
		logger.L.Error("demo login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		logger.L.Error("session token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session save failed"})
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Me returns the current user, or JSON null for anonymous callers.
func Me(c *gin.Context) {
	user, err := middlewares.UserFromRequest(c)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

func Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GoogleLogin starts the OAuth flow.
func GoogleLogin(c *gin.Context) {
	state := utils.GenerateRandomToken(24)
	c.SetCookie(stateCookieName, state, 600, "/", "", config.IsProduction(), true)
	c.Redirect(http.StatusFound, oauthConfig().AuthCodeURL(state))
}

// GoogleCallback finishes the OAuth flow: exchange the code, mint the user on
// first sign-in, open a session, and hand the popup back to the opener.
func GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", config.IsProduction(), true)

	conf := oauthConfig()
	token, err := conf.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		logger.L.Warn("oauth code exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	resp, err := conf.Client(c.Request.Context(), token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		logger.L.Warn("userinfo fetch failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/")
		return
	}
	defer resp.Body.Close()

	var profile struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.ID == "" {
		logger.L.Warn("userinfo decode failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	user, err := services.FindOrCreateByGoogleID(profile.ID, profile.Name, profile.Email, profile.Picture)
	if err != nil {
		logger.L.Error("user lookup after oauth failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	sessionToken, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		logger.L.Error("session token generation failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	setSessionCookie(c, sessionToken)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(oauthSuccessPage))
}
