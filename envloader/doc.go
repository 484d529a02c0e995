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
// Package envloader carrega variáveis de ambiente diretamente em campos de
// uma struct, usando as tags `env` e `envDefault`.
//
// Tipos suportados: string, inteiros, bool, float, time.Duration e []string
// (valores separados por vírgula). Structs aninhadas e ponteiros para struct
// são percorridos recursivamente.
//
// É usado pelo emulador para ler porta, seeds e chaves públicas:
//
//	type Settings struct {
//		Port    int           `env:"EMULATOR_PORT" envDefault:"8787"`
//		Verify  bool          `env:"EMULATOR_VERIFY"`
//		Latency time.Duration `env:"EMULATOR_LATENCY" envDefault:"0s"`
//		Seeds   []string      `env:"EMULATOR_SEEDS"`
//	}
//
//	var s Settings
//	if err := envloader.Load(&s); err != nil {
//		log.Fatal(err)
//	}
//
// Variáveis vazias são tratadas como ausentes e recebem o valor de envDefault.
package envloader
