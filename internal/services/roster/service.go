package roster

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/services/console"
)

// ErrInvalidPlayerName rejects names that could not be a Minecraft account
var ErrInvalidPlayerName = errors.New("invalid player name")

// Minecraft account names: 1-16 word characters
var playerNamePattern = regexp.MustCompile(`^\w{1,16}$`)

// Service expresses whitelist, operator, and player queries as console
// commands through the command gateway, parsing the server's replies.
type Service struct {
	console *console.Service
	logger  *slog.Logger
}

// New creates a new roster service
func New(consoleService *console.Service, logger *slog.Logger) *Service {
	return &Service{
		console: consoleService,
		logger:  logger,
	}
}

// PlayerList is a parsed player enumeration alongside the raw server reply
type PlayerList struct {
	Players []string
	Record  model.CommandRecord
}

// WhitelistAdd adds a player to the whitelist
func (s *Service) WhitelistAdd(ctx context.Context, player string) (model.CommandRecord, error) {
	if err := validatePlayerName(player); err != nil {
		return model.CommandRecord{}, err
	}
	return s.run(ctx, "whitelist add "+player)
}

// WhitelistRemove removes a player from the whitelist
func (s *Service) WhitelistRemove(ctx context.Context, player string) (model.CommandRecord, error) {
	if err := validatePlayerName(player); err != nil {
		return model.CommandRecord{}, err
	}
	return s.run(ctx, "whitelist remove "+player)
}

// WhitelistList returns the whitelisted players parsed from the server reply
func (s *Service) WhitelistList(ctx context.Context) (PlayerList, error) {
	record, err := s.run(ctx, "whitelist list")
	return PlayerList{
		Players: console.ParsePlayerList(record.Output),
		Record:  record,
	}, err
}

// WhitelistEnable turns whitelist enforcement on
func (s *Service) WhitelistEnable(ctx context.Context) (model.CommandRecord, error) {
	return s.run(ctx, "whitelist on")
}

// WhitelistDisable turns whitelist enforcement off
func (s *Service) WhitelistDisable(ctx context.Context) (model.CommandRecord, error) {
	return s.run(ctx, "whitelist off")
}

// OpAdd grants operator status to a player
func (s *Service) OpAdd(ctx context.Context, player string) (model.CommandRecord, error) {
	if err := validatePlayerName(player); err != nil {
		return model.CommandRecord{}, err
	}
	return s.run(ctx, "op "+player)
}

// OpRemove revokes operator status from a player
func (s *Service) OpRemove(ctx context.Context, player string) (model.CommandRecord, error) {
	if err := validatePlayerName(player); err != nil {
		return model.CommandRecord{}, err
	}
	return s.run(ctx, "deop "+player)
}

// OnlinePlayers returns the currently connected players
func (s *Service) OnlinePlayers(ctx context.Context) (PlayerList, error) {
	record, err := s.run(ctx, "list")
	return PlayerList{
		Players: console.ParsePlayerList(record.Output),
		Record:  record,
	}, err
}

// PlayerData returns the raw NBT dump for an online player. A player the
// server does not know maps to model.ErrPlayerNotOnline.
func (s *Service) PlayerData(ctx context.Context, player string) (model.CommandRecord, error) {
	if err := validatePlayerName(player); err != nil {
		return model.CommandRecord{}, err
	}

	record, err := s.run(ctx, "data get entity "+player)
	if err != nil {
		return record, err
	}

	if record.Output == "" || strings.HasPrefix(record.Output, "No entity was found") {
		return record, model.ErrPlayerNotOnline
	}
	return record, nil
}

func (s *Service) run(ctx context.Context, command string) (model.CommandRecord, error) {
	return s.console.Execute(ctx, command)
}

func validatePlayerName(player string) error {
	if !playerNamePattern.MatchString(player) {
		return ErrInvalidPlayerName
	}
	return nil
}
