package git

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
)

// Authentication types accepted in git.auth.type.
const (
	AuthNone  = "none"
	AuthToken = "token"
	AuthSSH   = "ssh"
)

// defaultGitUser is used when the repository URL names no user.
const defaultGitUser = "git"

// Credentials is the transport authentication for one mechanism repository.
// It is resolved once, when the source is opened, so a token sent to the
// wrong kind of remote or an unusable SSH key fails before any clone starts.
type Credentials struct {
	kind     string
	endpoint *transport.Endpoint
	method   transport.AuthMethod
}

// NewCredentials resolves cfg.Auth against cfg.Repository. Token auth needs
// an http(s) remote and SSH auth an ssh remote; "none" works with any remote,
// including local paths. The user named in the URL, if any, is used as the
// login for both.
func NewCredentials(cfg config.GitConfig) (*Credentials, error) {
	ep, err := transport.NewEndpoint(cfg.Repository)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanism repository %q: %w", cfg.Repository, err)
	}

	c := &Credentials{kind: cfg.Auth.Type, endpoint: ep}
	if c.kind == "" {
		c.kind = AuthNone
	}

	switch c.kind {
	case AuthNone:

	case AuthToken:
		if ep.Protocol != "https" && ep.Protocol != "http" {
			return nil, c.errorf("token auth needs an http(s) remote, not %s", ep.Protocol)
		}
		if cfg.Auth.Token == "" {
			return nil, c.errorf("token auth requires a token")
		}
		c.method = &http.BasicAuth{Username: c.user(), Password: cfg.Auth.Token}

	case AuthSSH:
		if ep.Protocol != "ssh" {
			return nil, c.errorf("ssh auth needs an ssh remote, not %s", ep.Protocol)
		}
		method, err := loadSSHKey(c.user(), cfg.Auth.SSHKeyPath, cfg.Auth.SSHKeyPassphrase)
		if err != nil {
			return nil, c.errorf("%v", err)
		}
		c.method = method

	default:
		return nil, c.errorf("unknown auth type %q", c.kind)
	}

	return c, nil
}

// loadSSHKey reads a private key that must not be readable by group or others.
func loadSSHKey(user, keyPath, passphrase string) (transport.AuthMethod, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("ssh auth requires ssh_key_path")
	}

	info, err := os.Stat(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access SSH key file: %w", err)
	}
	if mode := info.Mode().Perm(); mode&0o077 != 0 {
		return nil, fmt.Errorf("SSH key file %s permissions too open (%o), should be 0600", keyPath, mode)
	}

	auth, err := ssh.NewPublicKeysFromFile(user, keyPath, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key: %w", err)
	}
	return auth, nil
}

// Method returns the go-git auth method, nil for "none".
func (c *Credentials) Method() transport.AuthMethod { return c.method }

// Kind returns the authentication type.
func (c *Credentials) Kind() string { return c.kind }

// Source returns the repository address without user or password, safe to
// print and log.
func (c *Credentials) Source() string {
	ep := c.endpoint
	if ep.Protocol == "file" {
		return ep.Path
	}
	host := ep.Host
	if ep.Port != 0 {
		host += ":" + strconv.Itoa(ep.Port)
	}
	path := ep.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return ep.Protocol + "://" + host + path
}

func (c *Credentials) user() string {
	if c.endpoint.User != "" {
		return c.endpoint.User
	}
	return defaultGitUser
}

func (c *Credentials) errorf(format string, args ...any) error {
	return fmt.Errorf("mechanism repository %s: %s", c.Source(), fmt.Sprintf(format, args...))
}
