package notify

import (
	"fmt"

	"github.com/bekmanvision/uniqer/internal/models"
)

// ApplicationConfirmation is the email sent to an applicant right after a
// tour booking is accepted.
func ApplicationConfirmation(name, tourTitle string) (subject, html string) {
	subject = fmt.Sprintf("Заявка на тур %q получена - UniQer", tourTitle)
	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Здравствуйте, %s!</h2>
  <p>Спасибо за вашу заявку на кампус-тур <strong>%q</strong>.</p>
  <p>Мы получили вашу заявку и свяжемся с вами в ближайшее время для подтверждения участия.</p>
  <p>С уважением,<br>Команда UniQer</p>
</body>
</html>`, name, tourTitle)

	return subject, html
}

// NewApplicationAlert is the staff notification about a fresh application.
func NewApplicationAlert(name, phone string, role models.ApplicantRole, tourTitle string) (subject, html string) {
	if tourTitle == "" {
		tourTitle = "Форма контакта"
	}

	subject = fmt.Sprintf("Новая заявка: %s - %s", name, tourTitle)
	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Новая заявка</h2>
  <ul>
    <li>Имя: %s</li>
    <li>Телефон: %s</li>
    <li>Роль: %s</li>
    <li>Тур: %s</li>
  </ul>
</body>
</html>`, name, phone, RoleLabel(role), tourTitle)

	return subject, html
}

// RoleLabel maps an applicant role to its Russian display label.
func RoleLabel(role models.ApplicantRole) string {
	switch role {
	case models.RoleStudent:
		return "Ученик"
	case models.RoleParent:
		return "Родитель"
	case models.RoleSchool:
		return "Школа"
	case models.RoleOther:
		return "Другое"
	}

	return string(role)
}
