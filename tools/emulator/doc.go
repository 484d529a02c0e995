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
// Package emulator implementa, em memória, o protocolo HTTP da API do Stark
// Bank. É usado pelos testes do SDK e pode ser executado localmente
// (cmd/emulator) para desenvolver sem acesso ao sandbox.
//
// Qualquer endpoint é aceito; as chaves JSON seguem as mesmas regras de
// rest.Resource (ex: "dict-key" usa "key" e "keys"):
//
//	POST   /{resource}          cria em lote ({plural: [...]}) ou um único objeto
//	GET    /{resource}          lista com limit (máx. 100), cursor e filtros
//	GET    /{resource}/{id}     busca por id (404 invalidId quando ausente)
//	PATCH  /{resource}/{id}     mescla os campos enviados
//	DELETE /{resource}/{id}     remove e devolve o objeto
//	GET    /{resource}/{id}/pdf documento PDF mínimo
//	GET    /{resource}/log      eventos gerados por criação, patch e remoção
//
// As rotas respondem também sob o prefixo /v2. Requisições sem os headers
// Access-Id, Access-Time e Access-Signature recebem 401. Com RegisterKey ou
// WithVerification a assinatura é conferida com a chave pública registrada.
//
// Uso em testes:
//
//	srv := emulator.New()
//	srv.Store().Seed("dict-key", emulator.Object{"id": "tony@starkbank.com"})
//	ts := httptest.NewServer(srv.Handler())
//	defer ts.Close()
//
//	client := rest.New(rest.WithUser(project), rest.WithBaseURL(ts.URL))
package emulator
