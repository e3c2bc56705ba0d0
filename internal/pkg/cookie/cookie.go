package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is the cookie the dashboard's login flow sets. Browsers
// cannot attach an Authorization header to a websocket upgrade, so the session
// endpoint authenticates through it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
