// model/customer.go
package model

import "strings"

type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday Date   `json:"birthday"`
}

// CustomerReq is shared by create and update; updates re-validate the full shape.
// swagger:model CustomerReq
type CustomerReq struct {
	Name     string `json:"name" validate:"notblank"`
	Phone    string `json:"phone" validate:"required,min=10,max=11,digits"`
	CPF      string `json:"cpf" validate:"required,len=11,digits"`
	Birthday Date   `json:"birthday"`
}

// Normalize trims the text fields in place; both the handler and the
// service call it so they validate the same values.
func (r *CustomerReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.CPF = strings.TrimSpace(r.CPF)
}
