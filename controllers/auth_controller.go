// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/models"
	"ticket-office/session"
)

// ------------------ login ------------------

// ShowLoginPage renders the sign-in form.
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{}))
}

// PerformLogin authenticates against the backend and, on success, persists
// the session pair and redirects home. Failures re-render the form with
// the backend's message (or the transport fallback).
func PerformLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	// client-side validation class: caught before any request is sent
	if email == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing email or password")
		renderError(c, http.StatusBadRequest, "login.html", gin.H{"Email": email}, "Please fill in all fields.")
		return
	}

	payload, err := authService.Login(c.Request.Context(), models.Credentials{Email: email, Password: password})
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Warn.Printf("PerformLogin: login failed for %s: %v", email, err)
		renderError(c, http.StatusUnauthorized, "login.html", gin.H{"Email": email},
			friendly(err, "Login failed, please try again."))
		return
	}

	if err := session.Save(c, payload.Token, *payload.User); err != nil {
		logger.Error.Printf("PerformLogin: failed to persist session: %v", err)
		renderError(c, http.StatusInternalServerError, "login.html", gin.H{"Email": email},
			"Internal error, please try again.")
		return
	}

	logger.Info.Printf("PerformLogin: %s signed in", payload.User.Email)
	c.Redirect(http.StatusFound, "/")
}

// ------------------ registration ------------------

// ShowRegisterPage renders the account-creation form.
func ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{}))
}

// PerformRegister creates an account. When the backend signs the new
// account in (token + user in the payload) the session is persisted right
// away; otherwise the visitor is sent to the login form.
func PerformRegister(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm")

	if email == "" || password == "" {
		renderError(c, http.StatusBadRequest, "register.html",
			gin.H{"Email": email, "Username": username}, "Please fill in all fields.")
		return
	}
	if confirm != "" && confirm != password {
		renderError(c, http.StatusBadRequest, "register.html",
			gin.H{"Email": email, "Username": username}, "Passwords do not match.")
		return
	}

	payload, err := authService.Register(c.Request.Context(), models.Registration{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Warn.Printf("PerformRegister: registration failed for %s: %v", email, err)
		renderError(c, http.StatusBadRequest, "register.html",
			gin.H{"Email": email, "Username": username},
			friendly(err, "Registration failed, please try again."))
		return
	}

	if payload.Token != "" && payload.User != nil {
		if err := session.Save(c, payload.Token, *payload.User); err == nil {
			logger.Info.Printf("PerformRegister: %s registered and signed in", email)
			c.Redirect(http.StatusFound, "/")
			return
		}
		logger.Error.Printf("PerformRegister: account created but session save failed for %s", email)
	}

	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
		"Notice": "Account created, please sign in.",
		"Email":  email,
	}))
}

// ------------------ logout ------------------

// Logout notifies the backend best-effort, then clears the local session
// pair. The local teardown happens regardless of the backend's answer.
func Logout(c *gin.Context) {
	if s, ok := session.FromContext(c); ok {
		authService.Logout(c.Request.Context(), s.Token)
		logger.Info.Printf("Logout: %s signed out", s.User.Email)
	}
	session.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
