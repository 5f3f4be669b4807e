package contactcontroller

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/mailer"
	"github.com/yosergargouri/boutique-api/models"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in *ContactInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if n := len([]rune(in.Name)); n < 2 || n > 120 {
		return fmt.Errorf("Le nom doit contenir entre 2 et 120 caractères.")
	}
	if in.Email == "" || len(in.Email) > 255 || !strings.Contains(in.Email, "@") {
		return fmt.Errorf("Adresse e-mail invalide.")
	}
	if n := len([]rune(in.Subject)); n < 2 || n > 160 {
		return fmt.Errorf("Le sujet doit contenir entre 2 et 160 caractères.")
	}
	if n := len([]rune(in.Message)); n < 5 || n > 5000 {
		return fmt.Errorf("Le message doit contenir entre 5 et 5000 caractères.")
	}
	return nil
}

// adminEmail prefers the configured site settings contact address and falls
// back to the CONTACT_ADMIN_EMAIL env var.
func adminEmail(db *gorm.DB) string {
	var settings models.SiteSettings
	if err := db.Order("created_at DESC").First(&settings).Error; err == nil {
		if settings.Email != nil && strings.TrimSpace(*settings.Email) != "" {
			return strings.TrimSpace(*settings.Email)
		}
	}
	return os.Getenv("CONTACT_ADMIN_EMAIL")
}

func adminBody(in ContactInput) string {
	return fmt.Sprintf(
		"<h2>Nouveau message de contact</h2>"+
			"<p><strong>Nom :</strong> %s</p>"+
			"<p><strong>E-mail :</strong> %s</p>"+
			"<p><strong>Sujet :</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(in.Name),
		html.EscapeString(in.Email),
		html.EscapeString(in.Subject),
		html.EscapeString(in.Message),
	)
}

func confirmationBody(in ContactInput) string {
	return fmt.Sprintf(
		"<p>Bonjour %s,</p>"+
			"<p>Nous avons bien reçu votre message « %s » et nous vous répondrons dans les plus brefs délais.</p>"+
			"<p>Merci de nous avoir contactés.</p>",
		html.EscapeString(in.Name),
		html.EscapeString(in.Subject),
	)
}

// SubmitContact forwards the message to the shop admin and sends the sender a
// confirmation. The confirmation is best effort; a failure there does not
// fail the request.
func SubmitContact(db *gorm.DB, sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide."})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		to := adminEmail(db)
		if to == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Le service de contact n'est pas configuré."})
			return
		}

		subject := "Contact : " + input.Subject
		if err := sender.Send(to, subject, adminBody(input), input.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'envoi du message."})
			return
		}

		_ = sender.Send(input.Email, "Nous avons bien reçu votre message", confirmationBody(input), "")

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
