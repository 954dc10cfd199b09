package tools

type Tone string

const (
	ToneProfessional  Tone = "Professional"
	ToneFunny         Tone = "Funny"
	ToneMinimalist    Tone = "Minimalist"
	ToneInspirational Tone = "Inspirational"
	ToneQuirky        Tone = "Quirky"
	ToneBold          Tone = "Bold"
	ToneFlirty        Tone = "Flirty"
	ToneSarcastic     Tone = "Sarcastic"
	ToneGenZ          Tone = "Gen Z / Brainrot"
	ToneOldMoney      Tone = "Old Money"
)

var Tones = []Tone{
	ToneProfessional, ToneFunny, ToneMinimalist, ToneInspirational, ToneQuirky,
	ToneBold, ToneFlirty, ToneSarcastic, ToneGenZ, ToneOldMoney,
}

func toneOptions() []string {
	options := make([]string, len(Tones))
	for i, tone := range Tones {
		options[i] = string(tone)
	}
	return options
}

type BioForm struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Region        string `json:"region"`
	Tone          Tone   `json:"tone"`
	Keywords      string `json:"keywords"`
	CTA           string `json:"cta"`
	IncludeEmojis bool   `json:"include_emojis"`
}

func (f BioForm) Values() Values {
	tone := f.Tone
	if tone == "" {
		tone = ToneProfessional
	}
	emojis := "No"
	if f.IncludeEmojis {
		emojis = "Yes"
	}
	return NewValues(map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"region":      f.Region,
		"tone":        string(tone),
		"keywords":    f.Keywords,
		"cta":         f.CTA,
		"emojis":      emojis,
	})
}

// ProfileForm feeds the personality roast.
type ProfileForm struct {
	Name             string `json:"name"`
	Age              string `json:"age"`
	Occupation       string `json:"occupation"`
	Traits           string `json:"traits"`
	Hobbies          string `json:"hobbies"`
	SocialMediaStyle string `json:"social_media_style"`
	WorstHabit       string `json:"worst_habit"`
}

func (f ProfileForm) Values() Values {
	return NewValues(map[string]string{
		"name":             f.Name,
		"age":              f.Age,
		"occupation":       f.Occupation,
		"traits":           f.Traits,
		"hobbies":          f.Hobbies,
		"socialMediaStyle": f.SocialMediaStyle,
		"worstHabit":       f.WorstHabit,
	})
}
