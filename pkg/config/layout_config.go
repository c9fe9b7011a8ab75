package config

// 布局配置常量
// 本文件定义窗口尺寸和 HUD 元素位置,玩法相关的场地尺寸见 GameplayConfig.Field

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
)

// HUD 布局
const (
	// HUDMarginX HUD 文本左边距
	HUDMarginX = 16.0

	// HUDScoreY 分数行的纵坐标
	HUDScoreY = 16.0

	// HUDLineHeight HUD 行高
	HUDLineHeight = 18.0

	// HealthBarWidth 玩家血条总宽度
	HealthBarWidth = 100.0

	// HealthBarHeight 玩家血条高度
	HealthBarHeight = 10.0

	// BossBarWidth Boss 血条宽度(屏幕顶部居中)
	BossBarWidth = 300.0

	// BossBarY Boss 血条纵坐标
	BossBarY = 95.0

	// BannerY 道具横幅的纵坐标
	BannerY = 150.0
)

// PopupRiseDistance 得分飘字上浮距离(像素)
const PopupRiseDistance = 30.0
