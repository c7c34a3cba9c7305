package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// SignIn handles POST /api/auth/login and /api/auth/signup.
//
// The auth modal is opened, filled and submitted in one request. A rejected
// form closes the modal again so the shopper is never left scroll locked.
func SignIn(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := account.ParseAuthMode(mode)
		if err != nil {
			respondError(c, err)
			return
		}
		var creds account.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			badRequest(c, "Invalid input: "+err.Error())
			return
		}

		var session account.Session
		if withStorefront(c, func(f *storefront.Storefront) error {
			f.OpenAuth(m)
			f.SetAuthForm(creds)
			s, err := f.SubmitAuth()
			if err != nil {
				f.CloseAuth()
				return err
			}
			session = s
			return nil
		}) {
			c.JSON(http.StatusOK, gin.H{"session": session})
		}
	}
}

// SignOut handles POST /api/auth/logout.
func SignOut() gin.HandlerFunc {
	return func(c *gin.Context) {
		var session account.Session
		if withStorefront(c, func(f *storefront.Storefront) error {
			f.SignOut()
			session = f.Session()
			return nil
		}) {
			c.JSON(http.StatusOK, gin.H{"session": session})
		}
	}
}
