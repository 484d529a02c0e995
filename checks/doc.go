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
//
// Package checks valida e normaliza os parâmetros usados na construção dos
// recursos do SDK.
//
// Visão Geral:
// Cada recurso (Transfer, Deposit, ...) pode ser construído a partir de um
// "saco" de parâmetros (Params). O Checker consome os campos esperados um a um
// (Pop), converte os tipos e, ao final (Finish), falha se sobrou alguma chave
// não reconhecida. Campos obrigatórios são declarados com tags `validate` e
// verificados por Struct, usando o go-playground/validator.
//
// Exemplo de Uso:
//
//	c := checks.New(checks.Params{"amount": 100, "name": "Tony Stark"})
//	amount := c.Int64("amount")
//	name := c.String("name")
//	if err := c.Finish(); err != nil {
//		// *errs.ValidationError
//	}
//
// Datas:
// DateTime e Date aceitam time.Time, *time.Time ou strings nos formatos
// RFC3339, "2006-01-02 15:04:05.999" e "2006-01-02". O resultado é sempre
// normalizado para UTC.
package checks
