package email

import "fmt"

// CredencialesEmailData contains the data needed for the initial
// credentials email sent to newly created staff accounts.
type CredencialesEmailData struct {
	NombreCompleto string
	Email          string
	Username       string
	Password       string
	AppName        string
	BaseURL        string
}

// BuildCredencialesEmail creates the welcome message holding the initial
// username and generated password for a new staff account. The recipient is
// expected to change the password on first login.
func BuildCredencialesEmail(data CredencialesEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Sistema de Registros de Maternidad"
	}

	subject := fmt.Sprintf("Credenciales de acceso a %s", appName)

	textBody := fmt.Sprintf(`Estimado/a %s:

Se ha creado una cuenta para usted en %s.

Sus credenciales de acceso son:

  Usuario:    %s
  Contraseña: %s

Por seguridad, cambie su contraseña la primera vez que inicie sesión.

Acceso al sistema: %s

Atentamente,
Equipo de %s`,
		data.NombreCompleto, appName, data.Username, data.Password, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Estimado/a %s:</h2>
    <p>Se ha creado una cuenta para usted en <strong>%s</strong>.</p>
    <p>Sus credenciales de acceso son:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">
        Usuario: %s<br>
        Contraseña: %s
    </p>
    <p>Por seguridad, cambie su contraseña la primera vez que inicie sesión.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Ir al sistema</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Atentamente,<br>Equipo de %s</p>
</body>
</html>`,
		data.NombreCompleto, appName, data.Username, data.Password, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
