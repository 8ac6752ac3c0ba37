package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashforge/internal/viewmodel"
)

type navItem struct {
	key  string
	icon func() fyne.Resource
}

// navItems follow the viewmodel.Nav* order
var navItems = []navItem{
	{KeyNavStudy, theme.HomeIcon},
	{KeyNavDecks, theme.FolderOpenIcon},
	{KeyNavCreate, theme.ContentAddIcon},
	{KeyNavBrowse, theme.ListIcon},
	{KeyNavAnalytics, theme.GridIcon},
	{KeyNavGroups, theme.AccountIcon},
	{KeyNavTutor, theme.ComputerIcon},
}

// actionItems follow the viewmodel.Action* order
var actionItems = []navItem{
	{KeyActionSearch, theme.SearchIcon},
	{KeyActionNotifications, theme.InfoIcon},
	{KeyActionSettings, theme.SettingsIcon},
	{KeyActionAccount, theme.AccountIcon},
}

// selectionImportance highlights the selected entry of a button group
func selectionImportance(selected bool) widget.Importance {
	if selected {
		return widget.HighImportance
	}
	return widget.LowImportance
}

// navRail is the collapsible navigation column on the left
type navRail struct {
	ui *RootUI

	title       *widget.Label
	buttons     []*widget.Button
	collapseBtn *widget.Button
	themeBtn    *widget.Button
	width       *canvas.Rectangle
	container   *fyne.Container
}

func newNavRail(ui *RootUI) *navRail {
	r := &navRail{ui: ui}

	r.title = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	r.collapseBtn = widget.NewButtonWithIcon("", theme.MenuIcon(), ui.vm.ToggleNavRail)
	r.collapseBtn.Importance = widget.LowImportance

	items := container.NewVBox()
	for i, item := range navItems {
		index := i // Capture for closure
		btn := widget.NewButtonWithIcon(ui.localization.GetText(item.key), item.icon(), func() {
			ui.onNavSelected(index)
		})
		btn.Alignment = widget.ButtonAlignLeading
		r.buttons = append(r.buttons, btn)
		items.Add(btn)
	}

	r.themeBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyTheme), theme.ColorPaletteIcon(), ui.vm.ToggleTheme)
	r.themeBtn.Alignment = widget.ButtonAlignLeading
	r.themeBtn.Importance = widget.LowImportance

	// Transparent spacer holds the rail width
	r.width = canvas.NewRectangle(color.Transparent)
	r.width.SetMinSize(fyne.NewSize(NavRailWidth, 0))

	column := container.NewBorder(
		container.NewVBox(container.NewHBox(r.collapseBtn, r.title), widget.NewSeparator()),
		r.themeBtn,
		nil,
		nil,
		items,
	)
	r.container = container.NewStack(r.width, column)
	return r
}

func (r *navRail) refresh(flags viewmodel.Flags) {
	collapsed := flags.NavRailCollapsed
	for i, btn := range r.buttons {
		text := r.ui.localization.GetText(navItems[i].key)
		if collapsed {
			text = ""
		}
		btn.SetText(text)
		btn.Importance = selectionImportance(i == flags.SelectedNav)
		btn.Refresh()
	}

	if collapsed {
		r.title.Hide()
		r.themeBtn.SetText("")
		r.width.SetMinSize(fyne.NewSize(NavRailCollapsedW, 0))
	} else {
		r.title.Show()
		r.themeBtn.SetText(r.ui.localization.GetText(KeyTheme))
		r.width.SetMinSize(fyne.NewSize(NavRailWidth, 0))
	}
	r.container.Refresh()
}

// topBar holds the screen title and the four top actions
type topBar struct {
	ui *RootUI

	title     *widget.Label
	buttons   []*widget.Button
	container *fyne.Container
}

func newTopBar(ui *RootUI) *topBar {
	b := &topBar{ui: ui}

	b.title = widget.NewLabelWithStyle(ui.localization.GetText(KeyNavStudy), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	b.title.SizeName = theme.SizeNameSubHeadingText

	actions := container.NewHBox()
	for i, item := range actionItems {
		index := i // Capture for closure
		btn := widget.NewButtonWithIcon("", item.icon(), func() {
			ui.onActionSelected(index)
		})
		b.buttons = append(b.buttons, btn)
		actions.Add(btn)
	}

	b.container = container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, b.title),
		widget.NewSeparator(),
	)
	return b
}

func (b *topBar) refresh(flags viewmodel.Flags) {
	b.title.SetText(b.ui.localization.GetText(navItems[flags.SelectedNav].key))
	for i, btn := range b.buttons {
		btn.Importance = selectionImportance(i == flags.SelectedAction)
		btn.Refresh()
	}
}

// profileSection shows the avatar, learner details and the current session
type profileSection struct {
	ui *RootUI

	avatarBg  *canvas.Rectangle
	initials  *canvas.Text
	avatar    *TapArea
	name      *widget.Label
	title     *widget.Label
	quest     *widget.Label
	container *fyne.Container
}

func newProfileSection(ui *RootUI) *profileSection {
	p := &profileSection{ui: ui}
	seed := ui.vm.Seed()

	p.avatarBg = canvas.NewRectangle(ColorForge)
	p.initials = canvas.NewText(seed.Profile.Initials(), color.White)
	p.initials.TextStyle = fyne.TextStyle{Bold: true}
	p.initials.Alignment = fyne.TextAlignCenter
	p.avatar = NewTapArea(container.NewStack(p.avatarBg, container.NewCenter(p.initials)), ui.vm.MorphAvatar)

	p.name = widget.NewLabelWithStyle(seed.Profile.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.name.SizeName = theme.SizeNameSubHeadingText
	p.title = widget.NewLabel(seed.Profile.Title)
	p.quest = widget.NewLabel(QuestPrefix + seed.Profile.QuestGoal)

	forge := widget.NewLabelWithStyle(ui.localization.GetText(KeyInTheForge), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	sessionTitle := widget.NewLabel(seed.Profile.SessionTitle)
	sessionTopic := widget.NewLabel(seed.Profile.SessionTopic)
	sessionTopic.Wrapping = fyne.TextWrapWord

	identity := container.NewVBox(p.name, p.title, p.quest)
	p.container = container.NewVBox(
		container.NewHBox(container.NewCenter(p.avatar), identity),
		forge,
		sessionTitle,
		sessionTopic,
	)
	return p
}

func (p *profileSection) refresh(flags viewmodel.Flags) {
	size := AvatarSize
	p.avatarBg.FillColor = ColorForge
	if flags.AvatarMorphed {
		size = AvatarMorphedSize
		p.avatarBg.FillColor = ColorEmber
	}
	p.avatarBg.SetMinSize(fyne.NewSize(size, size))
	p.avatarBg.CornerRadius = size / 2
	p.initials.TextSize = InitialsTextSize * size / AvatarSize
	p.avatarBg.Refresh()
	p.initials.Refresh()
	p.avatar.Refresh()
}

// progressSection shows streak, XP, the daily goal bar and the stat cards
type progressSection struct {
	ui *RootUI

	streak    *widget.Label
	xp        *widget.Label
	goal      *widget.Label
	bar       *widget.ProgressBar
	wave      *widget.ProgressBarInfinite
	barArea   *TapArea
	container *fyne.Container
}

func newProgressSection(ui *RootUI) *progressSection {
	p := &progressSection{ui: ui}
	seed := ui.vm.Seed()
	loc := ui.localization

	p.streak = widget.NewLabel(StreakIcon + " " + fmt.Sprintf(loc.GetText(KeyDayStreak), seed.Progress.StreakDays))
	p.xp = widget.NewLabel(XPIcon + " " + fmt.Sprintf(loc.GetText(KeyXP), seed.Progress.XP))
	p.goal = widget.NewLabel(fmt.Sprintf(loc.GetText(KeyDailyGoal), seed.Progress.DailyPercent()))

	p.bar = widget.NewProgressBar()
	p.bar.SetValue(seed.Progress.DailyProgress)
	p.bar.TextFormatter = func() string { return "" }
	p.wave = widget.NewProgressBarInfinite()
	p.wave.Stop()
	p.wave.Hide()
	p.barArea = NewTapArea(container.NewStack(p.bar, p.wave), ui.vm.PulseWaveform)

	stats := ui.mobile.CreateAdaptiveContainer(ui.mobile.StatColumns(),
		statCard(strconv.Itoa(seed.Stats.CardsMastered), loc.GetText(KeyStatMastery)),
		statCard(strconv.Itoa(seed.Stats.Accuracy)+"%", loc.GetText(KeyStatAcc)),
		statCard(strconv.Itoa(seed.Stats.Sessions), loc.GetText(KeyStatSession)),
		statCard(strconv.Itoa(seed.Stats.Level), loc.GetText(KeyStatLevel)),
	)

	p.container = container.NewVBox(
		container.NewHBox(p.streak, layout.NewSpacer(), p.xp),
		p.goal,
		p.barArea,
		stats,
	)
	return p
}

func (p *progressSection) refresh(flags viewmodel.Flags) {
	if flags.WaveformActive {
		p.bar.Hide()
		p.wave.Show()
		p.wave.Start()
		return
	}
	p.wave.Stop()
	p.wave.Hide()
	p.bar.Show()
}

func statCard(value, label string) fyne.CanvasObject {
	valueText := canvas.NewText(value, ColorForge)
	valueText.TextStyle = fyne.TextStyle{Bold: true}
	valueText.TextSize = StatValueSize
	valueText.Alignment = fyne.TextAlignCenter

	caption := widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{})
	return widget.NewCard("", "", container.NewVBox(valueText, caption))
}

// quickActions is the row of deck shortcuts
type quickActions struct {
	ui *RootUI

	createDeck *TapArea
	openDecks  *TapArea
	generate   *TapArea
	container  *fyne.Container
}

func newQuickActions(ui *RootUI) *quickActions {
	q := &quickActions{ui: ui}
	loc := ui.localization

	card := func(titleKey, hintKey string, icon fyne.Resource, action func() error) *TapArea {
		body := widget.NewCard(loc.GetText(titleKey), loc.GetText(hintKey), widget.NewIcon(icon))
		return NewTapArea(body, func() { ui.onQuickAction(action) })
	}

	q.createDeck = card(KeyCreateDeck, KeyCreateDeckHint, theme.ContentAddIcon(), ui.vm.CreateDeck)
	q.openDecks = card(KeyMyDecks, KeyMyDecksHint, theme.FolderOpenIcon(), ui.vm.OpenDecks)
	q.generate = card(KeyAIGenerate, KeyAIGenerateHint, theme.ComputerIcon(), ui.vm.GenerateWithAI)

	q.container = ui.mobile.CreateAdaptiveContainer(3, q.createDeck, q.openDecks, q.generate)
	return q
}
