// Package starkbank é o SDK Go da API Stark Bank.
//
// Visão Geral:
// Cada recurso da API (Transfer, Deposit, Webhook, ...) vive no próprio
// pacote, com o tipo do objeto, um construtor New a partir de parâmetros
// nomeados, um Filter para listagens e as funções que a API suporta para ele
// (Create, Get, Query, Page, Update, Delete, PDF). Todas delegam ao pacote rest,
// que assina as requisições e pagina as listagens.
//
// Sub-Pacotes Principais:
//
// 1. user e key:
//   - Credenciais Project e Organization sobre chaves ECDSA secp256k1.
//   - Assinatura de cada requisição com a chave privada.
//
// 2. rest:
//   - Client com timeout, idioma, logger (zerolog) e métricas.
//   - Iterator sob demanda: a próxima página só é buscada quando necessária.
//
// 3. errs e checks:
//   - ValidationError, AuthenticationError, ApiError e NetworkError.
//   - Checagem de parâmetros e das tags `validate` antes de qualquer I/O.
//
// 4. pkg/config, pkg/logger, pkg/observability, pkg/receipts:
//   - Configuração em YAML (arquivo, S3 ou DynamoDB) com segredos do SSM ou
//     Secrets Manager, logger, métricas Datadog e arquivamento de PDFs no S3.
//
// 5. tools/emulator:
//   - Implementação em memória da API para testes locais e de integração.
//
// Exemplo de Início Rápido:
//
//	project, err := user.NewProject(checks.Params{
//		"id":          "5656565656565656",
//		"privateKey":  privateKeyPEM,
//		"environment": "sandbox",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := rest.New(rest.WithUser(project))
//
//	transfers, err := transfer.Create(ctx, client, []transfer.Transfer{{
//		Amount:        10000,
//		Name:          "Tony Stark",
//		TaxID:         "012.345.678-90",
//		BankCode:      "01",
//		BranchCode:    "0001",
//		AccountNumber: "10000-0",
//	}})
//
//	for t, err := range transfer.Query(client, transfer.Filter{Limit: 10, Status: "success"}).All(ctx) {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(t.ID, t.Amount)
//	}
package starkbank
