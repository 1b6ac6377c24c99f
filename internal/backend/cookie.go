package backend

import "strings"

// TokenFromCookieHeader достает значение cookie name из сырого заголовка Cookie.
// Алгоритм совпадает с разбором document.cookie на страницах админки:
// строка дополняется префиксом "; ", режется по "; name=", берется вторая часть
// и обрезается по первой ';'. Значение не декодируется. Если cookie встречается
// больше одного раза, результат пустой.
func TokenFromCookieHeader(header, name string) string {
	if header == "" || name == "" {
		return ""
	}
	parts := strings.Split("; "+header, "; "+name+"=")
	if len(parts) != 2 {
		return ""
	}
	value, _, _ := strings.Cut(parts[1], ";")
	return value
}
