package wallpaper

import (
	"context"
	"errors"

	"github.com/festperfect/festperfect/pkg/festival"
)

var ErrUnknownDevice = errors.New("unknown device size")

// FestivalProvider fetches the festival a wallpaper is rendered from.
type FestivalProvider func(ctx context.Context, festivalID string) (festival.Festival, error)

type Service interface {
	RenderWallpaper(ctx context.Context, festivalID string, dayID string, deviceName string) ([]byte, DeviceSize, error)
	PreviewHTML(ctx context.Context, festivalID string, dayID string, deviceName string) (string, error)
}

type ServiceImpl struct {
	renderer         ScheduleRenderer
	festivalProvider FestivalProvider
}

func NewService(renderer ScheduleRenderer, festivalProvider FestivalProvider) *ServiceImpl {
	return &ServiceImpl{
		renderer:         renderer,
		festivalProvider: festivalProvider,
	}
}

func (s *ServiceImpl) RenderWallpaper(ctx context.Context, festivalID string, dayID string, deviceName string) ([]byte, DeviceSize, error) {
	device, err := resolveDevice(deviceName)
	if err != nil {
		return nil, DeviceSize{}, err
	}
	f, err := s.festivalProvider(ctx, festivalID)
	if err != nil {
		return nil, DeviceSize{}, err
	}
	png, err := s.renderer.Render(ctx, f, dayID, device)
	if err != nil {
		return nil, DeviceSize{}, err
	}
	return png, device, nil
}

func (s *ServiceImpl) PreviewHTML(ctx context.Context, festivalID string, dayID string, deviceName string) (string, error) {
	device, err := resolveDevice(deviceName)
	if err != nil {
		return "", err
	}
	f, err := s.festivalProvider(ctx, festivalID)
	if err != nil {
		return "", err
	}
	return BuildScheduleHTML(f, dayID, device)
}

func resolveDevice(name string) (DeviceSize, error) {
	if name == "" {
		return DeviceSizes[0], nil
	}
	device, ok := DeviceByName(name)
	if !ok {
		return DeviceSize{}, ErrUnknownDevice
	}
	return device, nil
}
