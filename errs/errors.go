// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs define a taxonomia de erros do SDK.
//
// Todos os erros são ponteiros e devem ser inspecionados com errors.As:
//
//	var apiErr *errs.ApiError
//	if errors.As(err, &apiErr) {
//		for _, e := range apiErr.Errors {
//			fmt.Println(e.Code, e.Message)
//		}
//	}
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError é retornado quando a entrada do chamador é inválida.
// É sempre detectado localmente, antes de qualquer chamada de rede.
type ValidationError struct {
	// Field é o nome do parâmetro (nome da API, ex: "taxId"). Pode ser vazio.
	Field string
	// Message descreve o problema.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "starkbank: validation error: " + e.Message
	}
	return fmt.Sprintf("starkbank: validation error on %q: %s", e.Field, e.Message)
}

// AuthenticationError indica credencial ausente ou inválida.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "starkbank: authentication error: " + e.Message
}

// ErrorElement é um item da lista "errors" devolvida pela API.
type ErrorElement struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ApiError é retornado quando a API responde com status fora da faixa 2xx.
type ApiError struct {
	// StatusCode é o status HTTP da resposta.
	StatusCode int
	// Errors contém os pares code/message enviados pelo servidor.
	Errors []ErrorElement
}

func (e *ApiError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, el := range e.Errors {
		parts = append(parts, el.Code+": "+el.Message)
	}
	return fmt.Sprintf("starkbank: api error (status %d): %s", e.StatusCode, strings.Join(parts, "; "))
}

// HasCode informa se algum dos elementos possui o código informado.
func (e *ApiError) HasCode(code string) bool {
	for _, el := range e.Errors {
		if el.Code == code {
			return true
		}
	}
	return false
}

// NetworkError encapsula falhas de transporte (nenhuma resposta recebida).
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("starkbank: network error on %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap permite errors.Is(err, context.DeadlineExceeded) e afins.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsValidation informa se err (ou algum erro encadeado) é um ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsAuthentication informa se err é um AuthenticationError.
func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsNetwork informa se err é um NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// AsApiError extrai o ApiError de err, se houver.
func AsApiError(err error) (*ApiError, bool) {
	var target *ApiError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
