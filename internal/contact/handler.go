package contact

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bpolitiadis/leadwave/pkg/binder"
	"github.com/bpolitiadis/leadwave/pkg/logger"
	"github.com/bpolitiadis/leadwave/pkg/mailer"
)

// Config holds the contact handler configuration.
type Config struct {
	// ToEmail is the inbox that receives contact notifications.
	ToEmail string `env:"CONTACT_TO_EMAIL,required"`
}

// Dispatcher sends the rendered notification email. *mailer.Mailer
// satisfies it; tests stub it.
type Dispatcher interface {
	Send(ctx context.Context, params mailer.SendParams) (string, error)
}

// Handler drives one contact-form submission through parse → validate →
// dispatch. Each request is handled independently and statelessly; the
// only ordering guarantee is that dispatch never happens when validation
// fails.
type Handler struct {
	dispatcher Dispatcher
	log        *slog.Logger
	cfg        Config
}

// NewHandler creates a contact handler with injected dependencies.
func NewHandler(dispatcher Dispatcher, log *slog.Logger, cfg Config) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		log:        log,
		cfg:        cfg,
	}
}

// Routes declares the handler's routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/api/contact", h.Submit)
}

// Submit handles one submission. States: parse failure → unexpected 500;
// validation failure → 400 with every failing field; dispatch failure →
// generic 500 (provider detail logged, never returned); success → 200.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var sub Submission
	if err := binder.Form(r, &sub); err != nil {
		h.log.ErrorContext(ctx, "failed to parse submission",
			slog.String("error", err.Error()),
		)
		writeUnexpected(w)
		return
	}

	// Hidden field filled in means a bot. Pretend success so the bot
	// moves on, and skip the dispatch.
	if sub.Website != "" {
		h.log.WarnContext(ctx, "honeypot triggered",
			slog.String("email", logger.MaskEmail(sub.Email)),
		)
		writeAccepted(w)
		return
	}

	errs := Validate(sub).ToMap()
	if fileErr := ValidateAttachment(sub.Attachment); fileErr != "" {
		if errs == nil {
			errs = make(map[string]string, 1)
		}
		errs[attachmentErrKey] = fileErr
	}
	if len(errs) > 0 {
		h.log.InfoContext(ctx, "submission rejected",
			slog.String("email", logger.MaskEmail(sub.Email)),
			slog.Int("error_count", len(errs)),
		)
		writeRejected(w, errs, sub)
		return
	}

	params := mailer.SendParams{
		To:       h.cfg.ToEmail,
		Template: notificationTemplate,
		Data:     newEmailData(sub),
		ReplyTo:  sub.Email,
		Tags:     mailer.Tags{"source": "contact-form"},
	}

	if sub.Attachment != nil {
		att, err := readAttachment(sub.Attachment)
		if err != nil {
			h.log.ErrorContext(ctx, "failed to read attachment",
				slog.String("error", err.Error()),
			)
			writeUnexpected(w)
			return
		}
		params.Attachments = []mailer.Attachment{att}
	}

	h.log.InfoContext(ctx, "dispatching notification email",
		slog.String("email", logger.MaskEmail(sub.Email)),
		slog.String("subject", sub.Subject),
		slog.Bool("has_attachment", sub.Attachment != nil),
	)

	start := time.Now()
	msgID, err := h.dispatcher.Send(ctx, params)
	if err != nil {
		// Provider detail stays in the logs; the client gets the fixed
		// generic message so provider internals never leak.
		h.log.ErrorContext(ctx, "email dispatch failed",
			slog.String("email", logger.MaskEmail(sub.Email)),
			slog.String("error", err.Error()),
			slog.Duration("latency", time.Since(start)),
		)
		writeDispatchFailed(w)
		return
	}

	h.log.InfoContext(ctx, "email dispatched",
		slog.String("email", logger.MaskEmail(sub.Email)),
		slog.String("message_id", msgID),
		slog.Duration("latency", time.Since(start)),
	)
	writeAccepted(w)
}
