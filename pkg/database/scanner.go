package database

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------
// Reflection-Based SQL Scanner
// -----------------------------------------------------------------------------
// Bu dosya, sql.Rows sonuçlarını `db` tag'lerine göre struct'lara tarayan
// küçük bir scanner içerir. Struct alan haritaları tip başına bir kez
// çıkarılır ve process ömrü boyunca cache'lenir; model sayısı sabit ve
// küçük olduğu için cache süresiz tutulur.
// -----------------------------------------------------------------------------

type fieldMap map[string]string

var (
	fieldMapCache   = make(map[reflect.Type]fieldMap)
	fieldMapCacheMu sync.RWMutex
)

// getStructFieldMap, bir struct tipini analiz eder ve kolon adı -> alan adı
// eşlemesini cache'den döndürür.
func getStructFieldMap(structType reflect.Type) fieldMap {
	// Read lock ile cache'i kontrol et
	fieldMapCacheMu.RLock()
	if mapping, ok := fieldMapCache[structType]; ok {
		fieldMapCacheMu.RUnlock()
		return mapping
	}
	fieldMapCacheMu.RUnlock()

	// Cache miss - write lock al
	fieldMapCacheMu.Lock()
	defer fieldMapCacheMu.Unlock()

	// Double-check pattern
	if mapping, ok := fieldMapCache[structType]; ok {
		return mapping
	}

	mapping := make(fieldMap)
	numFields := structType.NumField()

	for i := 0; i < numFields; i++ {
		field := structType.Field(i)

		// Embedded struct'ları özyineli işle
		if field.Anonymous {
			if field.Type.Kind() == reflect.Struct {
				for col, fName := range getStructFieldMap(field.Type) {
					mapping[col] = field.Name + "." + fName
				}
			}
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = strings.ToLower(field.Name)
		}

		mapping[tag] = field.Name
	}

	fieldMapCache[structType] = mapping
	return mapping
}

// ScanStruct, tek bir *sql.Rows satırını bir struct'a tarar.
// Struct'ta karşılığı olmayan kolonlar sessizce atlanır.
func ScanStruct(rows *sql.Rows, dest any) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scanner: dest bir struct pointer olmalıdır, %T alındı", dest)
	}

	destElem := destValue.Elem()
	destType := destElem.Type()

	cols, _ := rows.Columns()
	mapping := getStructFieldMap(destType)

	scanArgs := make([]any, len(cols))

	for i, colName := range cols {
		fieldName, ok := mapping[colName]
		if !ok {
			scanArgs[i] = new(sql.RawBytes)
			continue
		}

		fieldVal := destElem.FieldByName(fieldName)

		if !fieldVal.IsValid() {
			fieldVal = findEmbeddedField(destElem, fieldName)
		}

		if !fieldVal.IsValid() || !fieldVal.CanSet() {
			return fmt.Errorf("scanner: '%s' alanı bulunamadı veya ayarlanamıyor", fieldName)
		}

		scanArgs[i] = fieldVal.Addr().Interface()
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return err
	}

	return nil
}

// findEmbeddedField, 'A.B' gibi iç içe alan adlarını bulur.
func findEmbeddedField(v reflect.Value, name string) reflect.Value {
	parts := strings.Split(name, ".")
	current := v

	for _, part := range parts {
		if current.Kind() == reflect.Ptr {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.Value{}
		}
		current = current.FieldByName(part)
	}

	return current
}

// ScanSlice, tüm *sql.Rows sonuç kümesini bir struct slice'ına tarar.
func ScanSlice(rows *sql.Rows, dest any) error {
	sliceValue := reflect.ValueOf(dest)
	if sliceValue.Kind() != reflect.Ptr || sliceValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("scanner: dest bir slice pointer olmalıdır, %T alındı", dest)
	}

	sliceElem := sliceValue.Elem()
	structType := sliceElem.Type().Elem()

	for rows.Next() {
		newStructPtr := reflect.New(structType)

		if err := ScanStruct(rows, newStructPtr.Interface()); err != nil {
			return err
		}

		sliceElem.Set(reflect.Append(sliceElem, newStructPtr.Elem()))
	}

	return rows.Err()
}
