package arr

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_client.go github.com/Makhuta/arr-monitor-manager/pkg/arr Client
//go:generate mockgen -package http -destination mocks/http/mock_http_client.go github.com/Makhuta/arr-monitor-manager/pkg/arr HTTPClient
