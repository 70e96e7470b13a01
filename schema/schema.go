// Package schema holds the DDL of the users table. The service never applies it;
// it is provisioned out of band and used directly by the integration tests.
package schema

import (
	_ "embed"
)

var (
	//go:embed users.up.sql
	UsersUp string

	//go:embed users.down.sql
	UsersDown string
)
