package psqlbuilder

import "github.com/Masterminds/squirrel"

// statementBuilder билдер запросов с PostgreSQL-плейсхолдерами ($1, $2, ...)
var statementBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return statementBuilder.Select(columns...)
}

// Insert создает INSERT запрос
func Insert(table string) squirrel.InsertBuilder {
	return statementBuilder.Insert(table)
}

// Update создает UPDATE запрос
func Update(table string) squirrel.UpdateBuilder {
	return statementBuilder.Update(table)
}

// Delete создает DELETE запрос
func Delete(table string) squirrel.DeleteBuilder {
	return statementBuilder.Delete(table)
}
