package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/raywall/starkbank-go/envloader"
	"github.com/raywall/starkbank-go/key"
)

// Settings são as opções do emulador, lidas de variáveis de ambiente.
type Settings struct {
	Port     int           `env:"EMULATOR_PORT" envDefault:"8787"`
	Seeds    []string      `env:"EMULATOR_SEEDS"` // arquivos JSON separados por vírgula
	Keys     string        `env:"EMULATOR_KEYS"`  // JSON accessId -> PEM público
	Latency  time.Duration `env:"EMULATOR_LATENCY" envDefault:"0s"`
	LogLevel string        `env:"EMULATOR_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool          `env:"EMULATOR_LOG_JSON"`
}

// Load lê as Settings do ambiente.
func Load() (Settings, error) {
	var s Settings
	if err := envloader.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Addr é o endereço de escuta derivado da porta.
func (s Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Seeds agrupa objetos iniciais por endpoint:
//
//	{"dict-key": [{"id": "tony@starkbank.com", "type": "email"}]}
type Seeds map[string][]map[string]any

// LoadSeeds lê e mescla os arquivos de seed informados.
func LoadSeeds(paths ...string) (Seeds, error) {
	seeds := make(Seeds)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler seeds %s: %w", path, err)
		}

		var content Seeds
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&content); err != nil {
			return nil, fmt.Errorf("erro ao parsear seeds %s: %w", path, err)
		}
		for endpoint, items := range content {
			seeds[endpoint] = append(seeds[endpoint], items...)
		}
	}
	return seeds, nil
}

// LoadKeys lê o arquivo de chaves públicas usado na verificação das assinaturas.
func LoadKeys(path string) (map[string]*key.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler chaves %s: %w", path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("erro ao parsear chaves %s: %w", path, err)
	}

	keys := make(map[string]*key.PublicKey, len(raw))
	for accessID, pemContent := range raw {
		pub, err := key.ParsePublicKey(pemContent)
		if err != nil {
			return nil, fmt.Errorf("chave inválida para %s: %w", accessID, err)
		}
		keys[accessID] = pub
	}
	return keys, nil
}
