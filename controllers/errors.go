package controllers

import "errors"

var (
	ErrNoPermission        = errors.New("you do not have permission to perform this action")
	ErrMissingClaims       = errors.New("missing credentials")
	ErrFranchiseRequired   = errors.New("account is not linked to a franchise")
	ErrVendorRequired      = errors.New("account is not linked to a vendor")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDiscrepancyConflict = errors.New("order has unresolved discrepancies")
)
