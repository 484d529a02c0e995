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

// Package rest é o gateway HTTP compartilhado por todos os recursos do SDK.
//
// Cada chamada é assinada com a credencial do Client (ou, na falta dela, com a
// credencial associada ao context via user.NewContext), enviada como JSON e
// decodificada no tipo estático informado pelo chamador.
//
// # Operações
//
//   - Post / PostSingle: criação em lote ou unitária.
//   - GetID, PatchID, DeleteID: operações sobre um objeto.
//   - Query / GetPage: listagem paginada por cursor.
//   - GetContent: sub-recursos binários (ex: PDF).
//
// # Exemplo
//
//	client := rest.New(rest.WithUser(project))
//	it := rest.Query[transfer.Transfer](client, rest.Resource{Name: "Transfer"}, 10, nil)
//	for it.Next(ctx) {
//		fmt.Println(it.Item().ID)
//	}
//	if err := it.Err(); err != nil {
//		// trate o erro
//	}
//
// Um *Client nil é válido e usa os valores padrão.
package rest
