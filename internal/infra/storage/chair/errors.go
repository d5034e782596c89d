package chair

import "errors"

var (
	// ErrChairNotFound возвращается, когда кресло не найдено
	ErrChairNotFound = errors.New("chair.repository: chair not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("chair.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("chair.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("chair.repository: failed to scan row")
)
