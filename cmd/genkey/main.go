// -----------------------------------------------------------------------------
// API Key Generation CLI
// -----------------------------------------------------------------------------
// Yeni bir servis client'ı için API key üretir ve API_CLIENTS environment
// değişkenine eklenecek satırı yazdırır.
//
// Kullanım:
//
//	genkey -client batch-importer -scopes "catalog:read catalog:write"
//
// Çıktıdaki plaintext key client'a verilir; config'e sadece bcrypt hash girer.
// -----------------------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biyonik/product-catalog-api/pkg/auth"
	"github.com/biyonik/product-catalog-api/pkg/token"
)

func main() {
	logger := log.New(os.Stderr, "[genkey] ", 0)

	clientID := flag.String("client", "", "client identifier (required)")
	scopes := flag.String("scopes", auth.ScopeCatalogRead, "space-separated scopes")
	flag.Parse()

	if *clientID == "" {
		logger.Println("❌ -client zorunludur")
		flag.Usage()
		os.Exit(1)
	}

	apiKey, err := token.GenerateAPIKey()
	if err != nil {
		logger.Fatalf("❌ API key üretilemedi: %v", err)
	}

	hash, err := auth.Hash(apiKey)
	if err != nil {
		logger.Fatalf("❌ API key hash'lenemedi: %v", err)
	}

	fmt.Printf("API key (client'a verin, bir daha gösterilmez):\n")
	fmt.Printf("  %s:%s\n\n", *clientID, apiKey)
	fmt.Printf("API_CLIENTS kaydı:\n")
	fmt.Printf("  %s=%s=%s\n", *clientID, hash, *scopes)
}
