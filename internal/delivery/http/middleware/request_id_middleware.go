package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID tags quiz traffic with an X-Request-ID so that session logs can
// be correlated with client reports.
func (m *Middleware) RequestID() fiber.Handler {
	tag := requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})

	return func(ctx *fiber.Ctx) error {
		if err := tag(ctx); err != nil {
			return err
		}
		if m != nil && m.Log != nil && m.Log.IsLevelEnabled(logrus.DebugLevel) {
			m.Log.WithFields(logrus.Fields{
				"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
				"method":     ctx.Method(),
				"path":       ctx.Path(),
			}).Debug("quiz request")
		}
		return nil
	}
}
