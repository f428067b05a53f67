package device

import (
	"context"
	"log/slog"

	"github.com/pkordes/travel-diary/internal/domain"
)

// LogNotifier delivers notifications as structured log lines. It is used where
// there is no notification centre, such as a server or a terminal.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier returns a notifier that writes to log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Permission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

func (n *LogNotifier) RequestPermission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

// Schedule fires immediately.
func (n *LogNotifier) Schedule(ctx context.Context, note domain.Notification) error {
	n.log.InfoContext(ctx, "notification", "title", note.Title, "body", note.Body)
	return nil
}
