package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/festperfect/festperfect/internal/utils"
	"github.com/festperfect/festperfect/pkg/festival"
)

var ErrUnsupportedImage = fmt.Errorf("unsupported image type")

type Service interface {
	ExtractFestival(ctx context.Context, image []byte, contentType string) (festival.Festival, error)
}

type ServiceImpl struct {
	client Client
	clock  utils.Clock
}

func NewService(client Client, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		client: client,
		clock:  clock,
	}
}

// ExtractFestival turns a lineup poster image into a draft festival. The
// draft is not persisted; the caller reviews it and creates it explicitly.
func (s *ServiceImpl) ExtractFestival(ctx context.Context, image []byte, contentType string) (festival.Festival, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return festival.Festival{}, ErrUnsupportedImage
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)
	lineup, err := s.client.ExtractLineup(ctx, dataURI)
	if err != nil {
		return festival.Festival{}, fmt.Errorf("failed to extract lineup: %w", err)
	}

	return ToFestival(lineup, s.clock.Now()), nil
}
