package tests

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/stretchr/testify/suite"
)

const baseURL = "http://0.0.0.0:3000"

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
}

func (s *TestSuite1) SetupSuite() {
	fmt.Println("setupSuite")
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(botConfigPath, "-bot-config MUST be set")
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/api/foods")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	fmt.Println("teardown Suite1")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	// TODO clean DB files
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) TestGuestAccess() {
	s.checkStatus(http.DefaultClient, "/", http.StatusOK)
	s.checkStatus(http.DefaultClient, "/api/foods", http.StatusOK)
	s.checkStatus(http.DefaultClient, "/api/cart", http.StatusUnauthorized)
	s.checkStatus(http.DefaultClient, "/api/orders", http.StatusUnauthorized)
	s.checkStatus(http.DefaultClient, "/admin/orders", http.StatusUnauthorized)
}

func (s *TestSuite1) TestAdminFlow() {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	client := &http.Client{Jar: jar}

	resp, err := client.PostForm(baseURL+"/signin", url.Values{
		"email":    {"admin@example.com"},
		"password": {"Admin123!"},
	})
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	s.checkStatus(client, "/profile", http.StatusOK)
	s.checkStatus(client, "/api/cart", http.StatusOK)
	s.checkStatus(client, "/admin/orders", http.StatusOK)
}

func (s *TestSuite1) TestBadCredentials() {
	resp, err := http.PostForm(baseURL+"/signin", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong password"},
	})
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *TestSuite1) checkStatus(client *http.Client, path string, want int) {
	resp, err := client.Get(baseURL + path)
	s.Require().NoError(err, path)
	resp.Body.Close()
	s.Equalf(want, resp.StatusCode, "GET %s", path)
}
