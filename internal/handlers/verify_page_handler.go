package handlers

import (
	"html/template"
	"net/http"

	"petbnb_backend/internal/services"
	"petbnb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// VerifyPageHandler serves the browser landing page that email
// verification links point to. It lives outside the /api group so the
// link works without a frontend deployment.
type VerifyPageHandler struct {
	authService services.AuthService
	page        *template.Template
}

func NewVerifyPageHandler(authService services.AuthService) *VerifyPageHandler {
	return &VerifyPageHandler{
		authService: authService,
		page:        template.Must(template.New("verify").Parse(verifyPageHTML)),
	}
}

func (h *VerifyPageHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/verify-email", h.VerifyEmailPage)
}

func (h *VerifyPageHandler) VerifyEmailPage(c *gin.Context) {
	token := c.Query("token")

	data := verifyPageData{Title: "Email verified", Message: "Your email has been verified. You can close this page and sign in."}

	if token == "" {
		data = verifyPageData{Title: "Verification failed", Message: "The verification link is missing its token.", Failed: true}
	} else if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		data = verifyPageData{Title: "Verification failed", Message: verifyFailureMessage(err), Failed: true}
	}

	status := http.StatusOK
	if data.Failed {
		status = http.StatusBadRequest
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = h.page.Execute(c.Writer, data)
}

type verifyPageData struct {
	Title   string
	Message string
	Failed  bool
}

func verifyFailureMessage(err error) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		switch {
		case apperrors.Is(err, apperrors.ErrVerificationTokenUsed):
			return "This verification link has already been used."
		case apperrors.Is(err, apperrors.ErrVerificationTokenExpired):
			return "This verification link has expired. Request a new one from your account page."
		}
		return appErr.Message
	}
	return "Something went wrong while verifying your email. Please try again later."
}

const verifyPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} - PetBnB</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #f6f8fa; margin: 0; }
    .card { max-width: 420px; margin: 12vh auto; background: #fff; border-radius: 12px; padding: 40px; text-align: center; box-shadow: 0 2px 12px rgba(0,0,0,0.08); }
    h1 { font-size: 1.4rem; color: {{if .Failed}}#b42318{{else}}#1a7f37{{end}}; }
    p { color: #444; line-height: 1.5; }
  </style>
</head>
<body>
  <div class="card">
    <h1>{{.Title}}</h1>
    <p>{{.Message}}</p>
  </div>
</body>
</html>`
