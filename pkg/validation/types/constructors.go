package types

// Array, yeni bir ArrayType nesnesi oluşturur.
//
// Döndürür:
//   - *ArrayType: Yeni ArrayType örneği
func Array() *ArrayType {
	return &ArrayType{}
}

// Boolean, yeni bir BooleanType nesnesi oluşturur.
//
// Döndürür:
//   - *BooleanType: Yeni BooleanType örneği
func Boolean() *BooleanType {
	return &BooleanType{}
}

// Number, yeni bir NumberType nesnesi oluşturur.
func Number() *NumberType {
	return &NumberType{}
}

// Object, yeni bir ObjectType nesnesi oluşturur.
func Object() *ObjectType {
	return &ObjectType{}
}

// String, yeni bir StringType nesnesi oluşturur.
//
// Döndürür:
//   - *StringType: Yeni StringType örneği
func String() *StringType {
	return &StringType{}
}
