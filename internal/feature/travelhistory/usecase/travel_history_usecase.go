package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"travel_journal/internal/feature/travelhistory/domain/entity"
	"travel_journal/internal/platform/mediastore"
	"travel_journal/internal/shared/apperr"
	"travel_journal/internal/shared/rowset"
)

const (
	// DateLayout is the wire format of start and end dates.
	DateLayout = "2006-01-02"

	// MaxUploads is the number of images accepted per entry.
	MaxUploads = 5
	// MaxUploadSize is the per-image size limit in bytes.
	MaxUploadSize = 5 << 20
)

// SubmitInput is a new entry as received from the client. Zero values mark
// missing fields.
type SubmitInput struct {
	UserID      uint
	Title       string
	AreaName    string
	Description string
	Experiences string
	StartDate   string
	EndDate     string
}

// missingFields lists every absent required field, using the wire names.
func (in SubmitInput) missingFields() []string {
	var missing []string
	if in.UserID == 0 {
		missing = append(missing, "userID")
	}
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.AreaName) == "" {
		missing = append(missing, "area_name")
	}
	if strings.TrimSpace(in.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(in.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	return missing
}

// TravelHistoryUsecase coordinates entry submission and the history reads.
type TravelHistoryUsecase struct {
	repo        HistoryRepository
	media       MediaStore
	mediaPrefix string
	newName     func(original string) string
}

// NewTravelHistoryUsecase wires the store, the media store and the public URL
// prefix under which stored media are served.
func NewTravelHistoryUsecase(repo HistoryRepository, media MediaStore, mediaPrefix string) *TravelHistoryUsecase {
	return &TravelHistoryUsecase{
		repo:        repo,
		media:       media,
		mediaPrefix: strings.TrimRight(mediaPrefix, "/"),
		newName:     newMediaName,
	}
}

// Submit persists an entry and its images atomically and returns the entry id.
//
// All validation happens before the first side effect. The entry row, every
// file and every media row are written inside one transaction; if anything
// fails, the transaction is rolled back and every file written by this call is
// deleted again. Delete failures are logged and do not replace the original
// error. Once started, the work is not cancelled by ctx.
func (u *TravelHistoryUsecase) Submit(ctx context.Context, in SubmitInput, uploads []entity.Upload) (uint, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		return 0, apperr.MissingFields(missing...)
	}
	start, err := time.Parse(DateLayout, strings.TrimSpace(in.StartDate))
	if err != nil {
		return 0, apperr.Validation("Invalid startDate, expected YYYY-MM-DD", "startDate")
	}
	end, err := time.Parse(DateLayout, strings.TrimSpace(in.EndDate))
	if err != nil {
		return 0, apperr.Validation("Invalid endDate, expected YYYY-MM-DD", "endDate")
	}
	if err := validateUploads(uploads); err != nil {
		return 0, err
	}

	entry := entity.TravelEntry{
		UserID:      in.UserID,
		Title:       strings.TrimSpace(in.Title),
		AreaName:    strings.TrimSpace(in.AreaName),
		Description: in.Description,
		Experiences: in.Experiences,
		StartDate:   start,
		EndDate:     end,
	}

	ctx = context.WithoutCancel(ctx)
	var written []string

	err = u.repo.RunInTx(ctx, func(tx HistoryTx) error {
		if err := tx.CreateEntry(ctx, &entry); err != nil {
			return fmt.Errorf("insert travel entry: %w", err)
		}
		for _, up := range uploads {
			name := u.newName(up.Filename)
			// recorded before the write so a partial write is cleaned up too
			written = append(written, name)
			if err := u.store(ctx, name, up); err != nil {
				if errors.Is(err, mediastore.ErrAlreadyExists) {
					// the existing file belongs to someone else
					written = written[:len(written)-1]
				}
				return err
			}
			m := &entity.MediaAttachment{
				UserID:    entry.UserID,
				HistoryID: entry.ID,
				Name:      name,
				MediaType: entity.MediaTypePhoto,
			}
			if err := tx.AddMedia(ctx, m); err != nil {
				return fmt.Errorf("insert media %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		u.compensate(ctx, written)
		return 0, apperr.Wrap(apperr.KindInternal, "Submission failed", err)
	}

	slog.Info("travel entry created", "history_id", entry.ID, "user_id", entry.UserID, "media", len(written))
	return entry.ID, nil
}

func (u *TravelHistoryUsecase) store(ctx context.Context, name string, up entity.Upload) error {
	body, err := up.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", up.Filename, err)
	}
	defer body.Close()

	if err := u.media.Save(ctx, name, up.ContentType, up.Size, body); err != nil {
		return fmt.Errorf("store media %s: %w", name, err)
	}
	return nil
}

// compensate removes files written by a failed submission.
func (u *TravelHistoryUsecase) compensate(ctx context.Context, names []string) {
	for _, name := range names {
		if err := u.media.Delete(ctx, name); err != nil {
			slog.Error("failed to delete media after failed submission", "file", name, "error", err)
		}
	}
}

func validateUploads(uploads []entity.Upload) error {
	if len(uploads) > MaxUploads {
		return apperr.Validation(fmt.Sprintf("At most %d images are allowed", MaxUploads), "images")
	}
	for _, up := range uploads {
		if up.Size > MaxUploadSize {
			return apperr.Validation(fmt.Sprintf("Image %s exceeds the 5MB limit", up.Filename), "images")
		}
		if !strings.HasPrefix(up.ContentType, "image/") {
			return apperr.Validation("Only image files are allowed", "images")
		}
		if up.Open == nil {
			return apperr.Validation(fmt.Sprintf("Image %s has no content", up.Filename), "images")
		}
	}
	return nil
}

// ListByUser returns one user's entries with their media.
func (u *TravelHistoryUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.TravelView, error) {
	if userID == 0 {
		return nil, apperr.Validation("Invalid user ID", "userID")
	}
	rows, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to load history", err)
	}
	return u.flatten(rows), nil
}

// ListAll returns every user's entries, newest trip first.
func (u *TravelHistoryUsecase) ListAll(ctx context.Context) ([]entity.TravelView, error) {
	rows, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch travel history", err)
	}
	return u.flatten(rows), nil
}

// ListByArea returns entries whose area equals area, ignoring case and
// surrounding whitespace.
func (u *TravelHistoryUsecase) ListByArea(ctx context.Context, area string) ([]entity.TravelView, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return nil, apperr.Validation("Country parameter is required", "area_name")
	}
	rows, err := u.repo.ListByArea(ctx, area)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch travel history", err)
	}
	return u.flatten(rows), nil
}

func (u *TravelHistoryUsecase) flatten(rows []entity.HistoryRow) []entity.TravelView {
	flat := make([]rowset.Row[uint, entity.TravelEntry], len(rows))
	for i, r := range rows {
		flat[i] = rowset.Row[uint, entity.TravelEntry]{Key: r.Entry.ID, Parent: r.Entry}
		if r.MediaName != nil {
			url := u.MediaURL(*r.MediaName)
			flat[i].Child = &url
		}
	}

	groups := rowset.Flatten(flat)
	out := make([]entity.TravelView, len(groups))
	for i, g := range groups {
		out[i] = entity.TravelView{TravelEntry: g.Parent, Media: g.Children}
	}
	return out
}

// MediaURL returns the public URL of a stored media name.
func (u *TravelHistoryUsecase) MediaURL(name string) string {
	return u.mediaPrefix + "/" + name
}
