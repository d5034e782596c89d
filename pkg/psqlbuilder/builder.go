package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder с PostgreSQL-плейсхолдерами ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT builder with dollar placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert starts an INSERT builder with dollar placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return psql.Insert(into)
}

// Update starts an UPDATE builder with dollar placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete starts a DELETE builder with dollar placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return psql.Delete(from)
}
