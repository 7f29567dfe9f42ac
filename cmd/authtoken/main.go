package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/sealkeeper/internal/flagx"
	"github.com/dmitrijs2005/sealkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sealkeeper/internal/server/config"
)

// authtoken prints an author access token signed with the server's secret
// key. It reads the same -c/-s/-t settings as the server.
func main() {

	cfg := config.LoadConfig()

	var authorID string
	fs := flag.NewFlagSet("authtoken", flag.ExitOnError)
	fs.StringVar(&authorID, "author", "author", "author id placed in the token subject")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-author"}))

	token, err := auth.GenerateToken(authorID, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(token)

}
