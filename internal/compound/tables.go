package compound

// vocabulary is one classification table with its match confidence.
type vocabulary struct {
	kind       ComponentType
	confidence float64
	terms      map[string]struct{}
}

func newVocabulary(kind ComponentType, confidence float64, terms ...string) vocabulary {
	v := vocabulary{kind: kind, confidence: confidence, terms: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		v.terms[t] = struct{}{}
	}
	return v
}

// vocabularies are consulted in this order at each match length.
var vocabularies = []vocabulary{
	newVocabulary(TypeMethod, 0.9,
		"红烧", "清蒸", "干煸", "爆炒", "油炸", "水煮", "凉拌", "烧烤", "干锅", "铁板",
		"回锅", "黄焖", "酱爆", "小炒", "清炒", "香煎", "白灼", "油焖", "干烧", "清炖",
		"卤", "炒", "烧", "蒸", "煮", "炸", "烤", "煎", "炖", "焖", "煲", "拌", "熏",
		"涮", "烩", "焗", "爆", "炝", "煨", "腌"),
	newVocabulary(TypeFlavor, 0.8,
		"麻辣", "香辣", "酸辣", "鱼香", "糖醋", "宫保", "椒盐", "蒜蓉", "酸甜", "五香",
		"咖喱", "孜然", "黑椒", "蚝油", "麻酱", "怪味", "酱香", "葱油", "剁椒", "泡椒",
		"甜", "辣", "酸", "咸", "香", "麻"),
	newVocabulary(TypeBase, 0.9,
		"面条", "米饭", "炒饭", "盖饭", "饺子", "包子", "馒头", "米粉", "米线", "河粉",
		"馄饨", "春卷", "火锅", "沙拉", "三明治", "汉堡", "披萨", "蛋糕", "煎饼", "拉面",
		"粉丝", "烧饼", "面包", "年糕", "汤圆", "凉皮",
		"面", "饭", "粥", "汤", "饼", "粉", "羹", "卷"),
	newVocabulary(TypeProtein, 0.85,
		"五花肉", "三文鱼", "牛肉", "猪肉", "鸡肉", "羊肉", "鸭肉", "鱼肉", "虾仁", "排骨",
		"鸡蛋", "鸡翅", "鸡腿", "肥肠", "里脊", "肉丝", "肉片", "牛腩", "豆腐", "鱿鱼",
		"带鱼", "鸡丁", "腊肉", "叉烧", "火腿", "香肠", "鸭血", "猪蹄", "牛排", "肉末",
		"鱼", "虾", "鸡", "鸭", "鹅", "牛", "猪", "羊", "蛋", "蟹", "肉"),
	newVocabulary(TypeVegetable, 0.8,
		"胡萝卜", "西红柿", "马铃薯", "西兰花", "四季豆", "土豆", "番茄", "茄子", "青椒",
		"白菜", "菠菜", "芹菜", "韭菜", "黄瓜", "萝卜", "洋葱", "蘑菇", "香菇", "木耳",
		"豆芽", "花菜", "玉米", "南瓜", "冬瓜", "丝瓜", "苦瓜", "莲藕", "生菜", "油菜",
		"包菜", "豆角", "青菜", "金针菇", "藕"),
	newVocabulary(TypeStyle, 0.75,
		"老北京", "川味", "川式", "粤式", "湘味", "东北", "北京", "四川", "广式", "港式",
		"台式", "日式", "韩式", "泰式", "西式", "家常", "农家", "重庆", "兰州", "新疆",
		"云南", "上海", "扬州", "宫廷", "潮汕"),
	newVocabulary(TypeModifier, 0.7,
		"特色", "招牌", "秘制", "经典", "正宗", "香脆", "迷你", "加大", "双拼", "豪华",
		"精品", "手工", "手擀", "自制", "私房", "大", "小", "嫩", "脆", "鲜"),
}

// foodCharacters mark an otherwise unknown character as a generic ingredient.
var foodCharacters = map[rune]struct{}{
	'肉': {}, '菜': {}, '瓜': {}, '豆': {}, '米': {}, '果': {}, '笋': {}, '菇': {},
	'椒': {}, '葱': {}, '姜': {}, '蒜': {}, '薯': {}, '芽': {}, '枣': {}, '莓': {},
	'梨': {}, '桃': {}, '橙': {}, '茶': {}, '奶': {}, '芝': {}, '藻': {}, '贝': {},
}

const (
	maxMatchRunes        = 4
	ingredientConfidence = 0.6
	unknownConfidence    = 0.3
)
