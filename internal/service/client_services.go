package service

import (
	"github.com/MKhiriev/go-auth-client/internal/adapter"
	"github.com/MKhiriev/go-auth-client/internal/logger"
)

// ClientServices groups the services used by the command-line client.
type ClientServices struct {
	AuthClient AuthClient
}

func NewClientServices(transport adapter.Transport, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthClient: NewAuthClient(transport, logger.GetChildLogger()),
	}
}
