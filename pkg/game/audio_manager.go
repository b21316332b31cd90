package game

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioHaptics 音效/触觉反馈协作者接口
// 修理模拟通过 FeedbackCoordinator 调用它；所有调用都是 fire-and-forget，
// 实现可能 panic（如底层设备错误），由 FeedbackCoordinator 捕获
type AudioHaptics interface {
	// PlaySound 播放指定ID的音效
	PlaySound(soundID string, volume float64)
	// PlayToolSelect 工具选中反馈
	PlayToolSelect(intensity float64)
	// PlayRepairAction 修理动作反馈
	PlayRepairAction(intensity float64)
	// PlayRepairSuccess 修复成功反馈
	PlayRepairSuccess(intensity float64)
	// PlayCleaningAudio 清洁反馈，tool 为 "spray" 或 "brush"
	PlayCleaningAudio(tool string, intensity float64)
	// PlayProgressiveRepairFeedback 随修理进度渐强的反馈
	// percent 为当前进度 0~100，maxIntensity 为强度上限 0~1
	PlayProgressiveRepairFeedback(percent, maxIntensity float64)
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理修理玩法中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供 AudioHaptics 接口的 ebiten 实现
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的音量设置
//   - 降级模式：audioContext 为 nil 或音频文件缺失时静默跳过，不影响模拟
type AudioManager struct {
	audioContext    *audio.Context           // ebiten 音频上下文，可为 nil（无声模式）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置）
	soundDir        string                   // 音效文件目录
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	missingSounds   map[string]bool          // 已知缺失的音效，避免重复告警
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（无声模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - soundDir: 音效文件目录（如 "data/sounds"）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, soundDir string) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundDir:        soundDir,
		soundPlayers:    make(map[string]*audio.Player),
		missingSounds:   make(map[string]bool),
	}
}

// PlaySound 播放音效
// 音量为 volume 与全局音效音量的乘积
func (am *AudioManager) PlaySound(soundID string, volume float64) {
	// 检查音效是否启用
	if am.settingsManager != nil {
		if !am.settingsManager.GetSettings().SoundEnabled {
			return
		}
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return
	}

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	player.SetVolume(volume * am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
}

// PlayToolSelect 工具选中反馈
func (am *AudioManager) PlayToolSelect(intensity float64) {
	am.PlaySound("tool_select", 0.4+0.6*intensity)
}

// PlayRepairAction 修理动作反馈
func (am *AudioManager) PlayRepairAction(intensity float64) {
	am.PlaySound("repair_action", 0.3+0.7*intensity)
}

// PlayRepairSuccess 修复成功反馈
func (am *AudioManager) PlayRepairSuccess(intensity float64) {
	am.PlaySound("repair_success", 0.5+0.5*intensity)
}

// PlayCleaningAudio 清洁反馈
// 油壶喷洒和刷子清扫使用不同的音效
func (am *AudioManager) PlayCleaningAudio(tool string, intensity float64) {
	soundID := "cleaning_brush"
	if tool == "spray" {
		soundID = "cleaning_spray"
	}
	am.PlaySound(soundID, intensity)
}

// PlayProgressiveRepairFeedback 随修理进度渐强的反馈
func (am *AudioManager) PlayProgressiveRepairFeedback(percent, maxIntensity float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	am.PlaySound("repair_progress", maxIntensity*percent/100)
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	// 无声模式
	if am.audioContext == nil {
		return nil
	}

	// 检查缓存
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	// 已知缺失的音效不再重复尝试
	if am.missingSounds[soundID] {
		return nil
	}

	player, err := am.loadSound(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missingSounds[soundID] = true
		return nil
	}

	am.soundPlayers[soundID] = player
	return player
}

// loadSound 从音效目录加载 WAV 文件并创建播放器
func (am *AudioManager) loadSound(soundID string) (*audio.Player, error) {
	path := filepath.Join(am.soundDir, soundID+".wav")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取音效文件失败: %w", err)
	}

	stream, err := wav.DecodeF32(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码音效失败: %w", err)
	}

	player, err := am.audioContext.NewPlayerF32(stream)
	if err != nil {
		return nil, fmt.Errorf("创建播放器失败: %w", err)
	}
	return player, nil
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
