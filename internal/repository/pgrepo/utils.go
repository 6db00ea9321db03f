package pgrepo

import "strconv"

// itoa сокращение для построения номеров плейсхолдеров в динамических запросах.
func itoa(n int) string {
	return strconv.Itoa(n)
}
