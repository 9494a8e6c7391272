package analytics

import "errors"

var (
	ErrMalformedAmount = errors.New("malformed order amount")
	ErrMissingSession  = errors.New("admin session is required")
	ErrFetchOrders     = errors.New("error fetching orders from platform")
)
