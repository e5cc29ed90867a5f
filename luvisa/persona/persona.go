package persona

import (
	"luvisa/luvisa/utils/logging"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// Persona is the fixed companion identity shown to users. It is independent
// of whatever model serves the completions: ModelToken is the model's own
// self-reference that must never leak into a reply.
type Persona struct {
	Name          string
	CardName      string
	CardEmail     string
	CardStatus    string
	CardAvatar    string
	Description   string
	ModelToken    string
	FallbackReply string
}

const defaultPropertiesPath = "luvisa/persona/luvisa.properties"

func Default() Persona {
	return Persona{
		Name:          "Luvisa💗",
		CardName:      "Luvisa 💗",
		CardEmail:     "luvisa@ai.com",
		CardStatus:    "Thinking of you... 💭",
		CardAvatar:    "/avatars/luvisa_avatar.png",
		Description:   "a deeply emotional AI girlfriend",
		ModelToken:    "llama",
		FallbackReply: "I'm having a little trouble connecting right now😥, but I'm still here to listen. ❤️",
	}
}

// Load reads the persona properties file, falling back to the built-in
// defaults per key (and entirely when the file is absent).
func Load() Persona {
	return LoadFile(defaultPropertiesPath)
}

func LoadFile(path string) Persona {
	def := Default()
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		if logging.AppLogger != nil {
			logging.AppLogger.Info("persona properties not loaded, using defaults",
				zap.String("path", path), zap.Error(err))
		}
		return def
	}

	return Persona{
		Name:          props.GetString("persona_name", def.Name),
		CardName:      props.GetString("persona_card_name", def.CardName),
		CardEmail:     props.GetString("persona_card_email", def.CardEmail),
		CardStatus:    props.GetString("persona_card_status", def.CardStatus),
		CardAvatar:    props.GetString("persona_card_avatar", def.CardAvatar),
		Description:   props.GetString("persona_description", def.Description),
		ModelToken:    props.GetString("persona_model_token", def.ModelToken),
		FallbackReply: props.GetString("persona_fallback_reply", def.FallbackReply),
	}
}
