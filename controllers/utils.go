package controllers

func BoolPointer(b bool) *bool {
	return &b
}

func StrPointer(s string) *string {
	return &s
}

func Float64Pointer(f float64) *float64 {
	return &f
}
