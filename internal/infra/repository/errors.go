package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/land-broker/internal/httperr"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateInvalidText         = "22P02"
	sqlStateClassConnection     = "08"
	sqlStateClassResources      = "53"
	sqlStateAdminShutdown       = "57P01"
	sqlStateCannotConnectNow    = "57P03"
)

// translate maps store errors onto business codes. Errors it does not
// recognise are returned unchanged and end up as a 500.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrBusiness(httperr.CodeNotFound)
	case isDuplicate(err):
		return httperr.Wrap(httperr.CodeConflict, err)
	case isForeignKey(err), isInvalidText(err):
		return httperr.Wrap(httperr.CodeValidation, err)
	case isUnavailable(err):
		return httperr.Wrap(httperr.CodeUnavailable, err)
	}
	return err
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == sqlStateUniqueViolation
}

func isForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == sqlStateForeignKeyViolation
}

func isInvalidText(err error) bool {
	return pgCode(err) == sqlStateInvalidText
}

func isUnavailable(err error) bool {
	if code := pgCode(err); code != "" {
		return strings.HasPrefix(code, sqlStateClassConnection) ||
			strings.HasPrefix(code, sqlStateClassResources) ||
			code == sqlStateAdminShutdown ||
			code == sqlStateCannotConnectNow
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
