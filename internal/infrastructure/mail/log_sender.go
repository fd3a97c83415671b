package mail

import (
	"fmt"

	"github.com/voxly/voxly-api/pkg/logger"
)

// LogSender implementa auth.ResetTokenSender escribiendo el link de reset al
// logger. El envío de correo real es un colaborador externo del sistema; en
// development este adaptador es lo que hay. El token sólo se escribe a nivel
// debug para no filtrarlo en logs de producción.
type LogSender struct {
	log     *logger.Logger
	baseURL string
}

// NewLogSender construye el adaptador de entrega basado en logs.
func NewLogSender(log *logger.Logger, baseURL string) *LogSender {
	return &LogSender{log: log, baseURL: baseURL}
}

// Send "entrega" el token de reset registrándolo en el log.
func (s *LogSender) Send(email, token string) error {
	s.log.Info().Str("email", email).Msg("token de reset emitido")
	s.log.Debug().
		Str("email", email).
		Str("link", fmt.Sprintf("%s?token=%s", s.baseURL, token)).
		Msg("link de reset (solo development)")
	return nil
}
