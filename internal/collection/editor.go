package collection

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"rb-admin-console/internal/domain"
)

// ErrRequiredField - обязательное поле формы не заполнено
var ErrRequiredField = errors.New("required field is empty")

// ValidationError указывает, какое поле не прошло проверку
type ValidationError struct {
	Field string
	Label string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, ErrRequiredField)
}

func (e *ValidationError) Unwrap() error {
	return ErrRequiredField
}

// State - состояние страницы списка
type State string

const (
	Browsing State = "browsing"
	Editing  State = "editing"
)

// Draft - незафиксированная копия записи в виде строковых значений формы.
// Пустой ID - новая запись.
type Draft struct {
	ID       string
	Values   map[string]string
	original map[string]string
}

// IsNew сообщает, что черновик создает новую запись
func (d *Draft) IsNew() bool {
	return d.ID == ""
}

func (d *Draft) Set(field, value string) {
	d.Values[field] = value
}

func (d *Draft) Get(field string) string {
	return d.Values[field]
}

// Changed сообщает, отличается ли значение поля от открытого
func (d *Draft) Changed(field string) bool {
	return d.Values[field] != d.original[field]
}

// Editor - боковая панель редактирования записи ресурса
type Editor struct {
	store *Store
	state State
	draft *Draft
}

func NewEditor(store *Store) *Editor {
	return &Editor{store: store, state: Browsing}
}

func (e *Editor) State() State {
	return e.state
}

// Draft возвращает активный черновик или nil
func (e *Editor) Draft() *Draft {
	return e.draft
}

// Open открывает панель. existing == nil - форма новой записи со значениями по умолчанию.
func (e *Editor) Open(existing domain.Record) *Draft {
	res := e.store.Resource()
	d := &Draft{
		Values:   make(map[string]string, len(res.Form)),
		original: make(map[string]string, len(res.Form)),
	}
	for _, f := range res.Form {
		var v string
		if existing == nil {
			v = f.Default
			if f.Kind == domain.FieldBool && v == "" {
				v = "false"
			}
		} else {
			v = FormValue(f.Kind, existing[f.Name])
		}
		d.Values[f.Name] = v
		d.original[f.Name] = v
	}
	if existing != nil {
		d.ID = existing.IDString(res.IDField)
	}
	e.draft = d
	e.state = Editing
	return d
}

// Apply переносит значения отправленной формы в черновик.
// Отсутствующий чекбокс означает false.
func (e *Editor) Apply(d *Draft, form url.Values) {
	for _, f := range e.store.Resource().Form {
		if f.Kind == domain.FieldBool {
			checked, _ := ParseValue(domain.FieldBool, form.Get(f.Name)).(bool)
			d.Values[f.Name] = strconv.FormatBool(checked)
			continue
		}
		if vals, ok := form[f.Name]; ok && len(vals) > 0 {
			d.Values[f.Name] = vals[0]
		}
	}
}

// Validate проверяет обязательные поля
func (e *Editor) Validate(d *Draft) error {
	res := e.store.Resource()
	for _, name := range res.Required {
		if strings.TrimSpace(d.Values[name]) != "" {
			continue
		}
		label := name
		if f, ok := res.FormField(name); ok && f.Label != "" {
			label = f.Label
		}
		return &ValidationError{Field: name, Label: label}
	}
	return nil
}

// Commit фиксирует черновик в коллекции и закрывает панель.
// Для существующей записи меняются только поля, которые правил оператор,
// поэтому сохранение без правок не меняет содержимое записи.
func (e *Editor) Commit(ctx context.Context, token string, d *Draft) (domain.Record, error) {
	if err := e.Validate(d); err != nil {
		return nil, err
	}
	res := e.store.Resource()

	var (
		rec domain.Record
		err error
	)
	if d.IsNew() {
		fresh := make(domain.Record, len(res.Form))
		for _, f := range res.Form {
			fresh[f.Name] = ParseValue(f.Kind, d.Values[f.Name])
		}
		rec, err = e.store.Create(ctx, token, fresh)
	} else {
		current := e.store.Find(d.ID)
		if current == nil {
			return nil, ErrNotFound
		}
		updated := current.Clone()
		for _, f := range res.Form {
			if d.Changed(f.Name) {
				updated[f.Name] = ParseValue(f.Kind, d.Values[f.Name])
			}
		}
		rec, err = e.store.Update(ctx, token, updated)
	}
	if err != nil {
		return nil, err
	}
	e.Close()
	return rec, nil
}

// Close закрывает панель без сохранения
func (e *Editor) Close() {
	e.draft = nil
	e.state = Browsing
}
