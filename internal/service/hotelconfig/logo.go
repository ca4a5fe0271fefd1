package hotelconfig

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// UploadLogo stores the hotel logo and records its public URL.
func (s *Service) UploadLogo(ctx context.Context, input LogoInput) (string, error) {
	id, err := privileged(ctx)
	if err != nil {
		return "", err
	}
	if err := input.validate(s.maxLogoBytes); err != nil {
		return "", err
	}
	if s.storage == nil {
		return "", domain.NewSoftFailure("upload_logo", domain.KindUnknown, "Logo uploads are not configured.")
	}

	objectPath := fmt.Sprintf("%s/logo-%d%s", id.TenantID, s.clock.Now().Unix(), logoExtensions[input.ContentType])
	url, err := s.storage.Upload(ctx, objectPath, input.ContentType, input.Data)
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.hotels.SetLogo(txCtx, id.TenantID, url); err != nil {
			return fmt.Errorf("set logo: %w", err)
		}
		if err := s.audit.Log(txCtx, s.auditEntry(ctx, id, "upload_logo", "Hotel logo updated",
			map[string]any{"logo_url": url, "size": len(input.Data)})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "hotel logo uploaded",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("object", objectPath),
		slog.Int("bytes", len(input.Data)),
	)

	return url, nil
}
