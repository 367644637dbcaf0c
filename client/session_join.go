package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// sessionJoinURL is Mojang's session server join endpoint. Confirming with
// it is the step between Encryption Response and a trusted Login Success
// on any online-mode server; the auth package stops short of it because it
// only covers acquiring the access token/profile, not joining a specific
// server.
const sessionJoinURL = "https://sessionserver.mojang.com/session/minecraft/join"

type sessionJoinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// joinMojangSession tells Mojang this account is about to join the server
// identified by serverIDHash, so the server's own session-has-joined check
// succeeds. profileUUID is the dashless or dashed UUID string; Mojang
// accepts either.
func joinMojangSession(accessToken, profileUUID, serverIDHash string) error {
	body, err := json.Marshal(sessionJoinRequest{
		AccessToken:     accessToken,
		SelectedProfile: strings.ReplaceAll(profileUUID, "-", ""),
		ServerID:        serverIDHash,
	})
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Post(sessionJoinURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("session join returned status %d", resp.StatusCode)
	}
	return nil
}
