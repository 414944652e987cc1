package service

import (
	"context"

	"github.com/rouaze/fwkey-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// KeyService resolves the manufacturing secret of a firmware identifier.
type KeyService interface {
	// LookupKey fetches and parses the key document and returns the value of
	// the manufacturing field in the section named fw.
	//
	// Errors wrap ErrUnspecifiedRequest, ErrDocumentFetch,
	// ini.ErrSectionNotFound or ini.ErrFieldNotFound.
	LookupKey(ctx context.Context, fw string) (string, error)
}

// BuildInfoService reports which build is answering lookups.
type BuildInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// KeyServiceWrapper defines middleware composition for KeyService.
// Implementations wrap an existing KeyService to add behavior such as
// logging.
type KeyServiceWrapper interface {
	Wrap(KeyService) KeyService // returns a decorated KeyService applying additional behavior
}
