package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cryptobuddy/internal/app"
	"cryptobuddy/internal/chat"
	"cryptobuddy/internal/infra"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for API credentials; absence is fine.
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra.PrintBanner(bootstrap.Config)
	bootstrap.WarmUp(ctx)

	fmt.Println("Type 'exit', 'quit' or 'bye' to end the conversation.")
	fmt.Println()

	runChat(ctx, os.Stdin, os.Stdout, bootstrap.Session)
}

// runChat drives the prompt/reply loop until the input ends, the user says
// goodbye, or ctx is canceled. Input is read on a separate goroutine so a
// signal interrupts the loop even while it waits on a line.
func runChat(ctx context.Context, in io.Reader, out io.Writer, session *chat.Session) {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	for {
		fmt.Fprint(out, "💬 You: ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n🤖 CryptoBuddy: Goodbye! 👋")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\n🤖 CryptoBuddy: Goodbye! 👋")
				return
			}
			reply, keepGoing := session.Respond(ctx, line)
			fmt.Fprintf(out, "🤖 CryptoBuddy: %s\n\n", reply)
			if !keepGoing {
				return
			}
		}
	}
}
